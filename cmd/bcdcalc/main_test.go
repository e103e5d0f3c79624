package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/bcdcalc/register"
)

func doCommand(t *testing.T, args ...string) (output string, err error) {
	cmd := newRootCommand()
	buff := &bytes.Buffer{}
	cmd.SetOut(buff)
	cmd.SetErr(buff)
	cmd.SetArgs(args)

	err = cmd.Execute()
	output = buff.String()
	return
}

func TestShow(t *testing.T) {
	assert := assert.New(t)

	output, err := doCommand(t, "show")
	assert.NoError(err)
	assert.Contains(output, "    A: 00000000000000\n")
	assert.Contains(output, "    B: 02999999999999\n")
	assert.Contains(output, "    C: 00000000000990\n")
}

func TestCanon(t *testing.T) {
	assert := assert.New(t)

	output, err := doCommand(t, "canon", "--a", "00050000000000")
	assert.NoError(err)
	assert.Contains(output, "    C: 05000000000998\n")

	output, err = doCommand(t, "canon", "--a", "91234000000099", "--b", "09992999999999")
	assert.NoError(err)
	assert.Contains(output, "    A: 99999999999099\n")
	assert.Contains(output, "    B: 02000000000000\n")
	assert.Contains(output, "    C: 99999999999099\n")

	_, err = doCommand(t, "canon", "--a", "12")
	assert.ErrorIs(err, register.ErrFormatLength)
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "trace.star")
	program := []string{
		`write("A", "01500000000000")`,
		`print(canonicalize())`,
	}
	assert.NoError(os.WriteFile(path, []byte(strings.Join(program, "\n")), 0644))

	output, err := doCommand(t, "run", path)
	assert.NoError(err)
	assert.Equal("01500000000000\n", output)

	_, err = doCommand(t, "run", filepath.Join(dir, "missing.star"))
	assert.Error(err)

	_, err = doCommand(t, "run")
	assert.Error(err)
}
