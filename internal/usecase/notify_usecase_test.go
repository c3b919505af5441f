package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gyomutime/pkg/errors"
)

func TestSendNotification(t *testing.T) {
	email := &fakeEmail{}
	uc := NewNotifyUseCase(email)
	ctx := context.Background()

	input := SendNotificationInput{
		To:      []string{"teacher@school.example.com"},
		Subject: "처리 완료",
		Body:    "<p>결과가 준비되었습니다.</p>",
	}

	err := uc.Send(ctx, user("someone"), input)
	assert.True(t, errors.Is(err, "forbidden"))

	err = uc.Send(ctx, admin("staff"), SendNotificationInput{Subject: "x", Body: "y"})
	assert.True(t, errors.Is(err, "bad_request"))

	err = uc.Send(ctx, admin("staff"), SendNotificationInput{To: input.To, Body: "y"})
	assert.True(t, errors.Is(err, "bad_request"))

	require.NoError(t, uc.Send(ctx, admin("staff"), input))
	require.Len(t, email.sent, 1)
	assert.Equal(t, input.To, email.sent[0].to)

	email.fail = true
	err = uc.Send(ctx, admin("staff"), input)
	assert.True(t, errors.Is(err, "internal"))
}

func TestSendNotificationWithoutProvider(t *testing.T) {
	uc := NewNotifyUseCase(nil)

	err := uc.Send(context.Background(), admin("staff"), SendNotificationInput{
		To: []string{"a@example.com"}, Subject: "s", Body: "b",
	})
	assert.True(t, errors.Is(err, "not_configured"))
}
