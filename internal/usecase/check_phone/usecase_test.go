package check_phone

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeVerifier struct {
	confirmed bool
}

func (v *fakeVerifier) HadBooking(context.Context, string, string, string) (bool, error) {
	return v.confirmed, nil
}

func TestExecute(t *testing.T) {
	uc := NewUseCase(&fakeVerifier{confirmed: true}, fakeLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		MasterCode: domain.MasterAlexander,
		Phone:      "+79991234567",
		Name:       "Иван",
	})
	require.NoError(t, err)
	assert.True(t, resp.Confirmed)
}

func TestExecute_NotConfirmed(t *testing.T) {
	uc := NewUseCase(&fakeVerifier{confirmed: false}, fakeLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		MasterCode: domain.MasterAlexander,
		Phone:      "+79991234567",
	})
	require.NoError(t, err)
	assert.False(t, resp.Confirmed)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeVerifier{}, fakeLogger{})

	_, err := uc.Execute(context.Background(), &Request{Phone: "+79991234567"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{MasterCode: "unknown", Phone: "+79991234567"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{MasterCode: domain.MasterAlexander, Phone: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
