package mail_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/obsidianco/lead-capture/internal/infra/mail"
)

type fakeSender struct {
	from string
	to   string
	msg  mail.Message
	err  error
}

func (f *fakeSender) Send(from, to string, msg mail.Message) error {
	f.from = from
	f.to = to
	f.msg = msg
	return f.err
}

func TestDispatcherSendsRenderedMessage(t *testing.T) {
	sender := &fakeSender{}
	d := mail.NewDispatcher(sender, "Mike <mike@theobsidianco.com>")

	d.SendWelcome("ecom", "jane@shop.io", "Jane")

	assert.Equal(t, "Mike <mike@theobsidianco.com>", sender.from)
	assert.Equal(t, "jane@shop.io", sender.to)
	assert.Contains(t, sender.msg.HTML, "Jane")
	assert.NotEmpty(t, sender.msg.Subject)
}

func TestDispatcherSwallowsSendFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp: connection refused")}
	d := mail.NewDispatcher(sender, "mike@theobsidianco.com")

	// Must not panic or surface anything; the pipeline never sees dispatch
	// outcomes.
	d.SendWelcome("beauty", "jane@shop.io", "Jane")
}

func TestDispatcherWithoutBackendIsNoOp(t *testing.T) {
	d := mail.NewDispatcher(nil, "mike@theobsidianco.com")

	d.SendWelcome("saas", "cto@startup.dev", "Sam")
}

func TestDispatcherUnknownVerticalDoesNotSend(t *testing.T) {
	sender := &fakeSender{}
	d := mail.NewDispatcher(sender, "mike@theobsidianco.com")

	d.SendWelcome("crypto", "jane@shop.io", "Jane")

	assert.Empty(t, sender.to)
}
