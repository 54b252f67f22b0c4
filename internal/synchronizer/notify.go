package synchronizer

import (
	"errors"

	"github.com/osse101/SoloLeveler_Go/internal/client"
	"github.com/osse101/SoloLeveler_Go/internal/domain"
)

// Describe turns an action error into the text the user sees. Transport
// and application failures get distinct prefixes; local refusals speak
// for themselves.
func Describe(err error) string {
	var te *client.TransportError
	if errors.As(err, &te) {
		return MsgPrefixTransport + te.Err.Error()
	}
	var ae *client.ApplicationError
	if errors.As(err, &ae) {
		return MsgPrefixApplication + ae.Error()
	}
	return err.Error()
}

func failure(action string, err error) domain.Outcome {
	level := domain.NotifyError
	if errors.Is(err, domain.ErrCancelled) {
		level = domain.NotifyInfo
	}
	return domain.Outcome{
		Action:       action,
		Notification: domain.Notification{Level: level, Message: Describe(err)},
		Err:          err,
	}
}

func success(action, message string, effects ...domain.Effect) domain.Outcome {
	return domain.Outcome{
		Action:       action,
		Notification: domain.Notification{Level: domain.NotifySuccess, Message: message},
		Effects:      effects,
	}
}
