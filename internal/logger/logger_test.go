package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"codeberg.org/mutker/argonctl/internal/errors"
)

func TestErrorWithCodeCarriesCode(t *testing.T) {
	var buf bytes.Buffer
	orig := log
	log = zerolog.New(&buf)
	defer func() { log = orig }()
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)

	errFactory := errors.New()
	ErrorWithCode(errFactory.New(errors.ErrAlreadyRunning)).Msg("startup refused")

	out := buf.String()
	assert.Contains(t, out, `"error_code":"already_running"`)
	assert.Contains(t, out, "startup refused")
}
