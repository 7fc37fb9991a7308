package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shohjahon77877/e-shop-florify/internal/account/service"
)

func TestGenerateOTP_SixDigits(t *testing.T) {
	for i := 0; i < 100; i++ {
		otp, err := service.GenerateOTP()
		assert.NoError(t, err)
		assert.Len(t, otp, 6)

		for _, r := range otp {
			assert.True(t, r >= '0' && r <= '9', "otp %q contains non-digit %q", otp, r)
		}
	}
}
