package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompt(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	c := New(strings.NewReader("router1\r\n  10.0.0.5 \nlast"), &out)

	got, err := c.Prompt(ctx, "device? ")
	require.NoError(t, err)
	assert.Equal(t, "router1", got)

	got, err = c.Prompt(ctx, "ip? ")
	require.NoError(t, err)
	assert.Equal(t, "  10.0.0.5 ", got, "answers are not trimmed")

	got, err = c.Prompt(ctx, "again? ")
	require.NoError(t, err)
	assert.Equal(t, "last", got, "final line without newline is returned")

	_, err = c.Prompt(ctx, "more? ")
	assert.ErrorIs(t, err, ErrInputExhausted)

	_, err = c.Prompt(ctx, "still? ")
	assert.ErrorIs(t, err, ErrInputExhausted)

	assert.Equal(t, "device? ip? again? more? still? ", out.String())
}

func TestPromptLongLine(t *testing.T) {
	ctx := context.Background()
	long := strings.Repeat("9", 70000)
	c := New(strings.NewReader(long+"\nnext\n"), &bytes.Buffer{})

	got, err := c.Prompt(ctx, "ip? ")
	require.NoError(t, err)
	assert.Len(t, got, 70000)

	got, err = c.Prompt(ctx, "ip? ")
	require.NoError(t, err)
	assert.Equal(t, "next", got)
}

func TestPromptReadError(t *testing.T) {
	boom := errors.New("boom")
	c := New(iotest.ErrReader(boom), &bytes.Buffer{})

	_, err := c.Prompt(context.Background(), "q? ")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInputExhausted)
}

func TestPromptCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	c := New(pr, &bytes.Buffer{})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Prompt(ctx, "device? ")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSay(t *testing.T) {
	var out bytes.Buffer
	New(strings.NewReader(""), &out).Say("That device is not in the network inventory.")
	assert.Equal(t, "That device is not in the network inventory.\n", out.String())
}
