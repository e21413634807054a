// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.properties")
	require.NoError(t, os.WriteFile(base, []byte("port=${PORT}\ntimeout=30\nhosts=a, b\nname=base\n"), 0o600))
	app := filepath.Join(dir, "app.yaml")
	require.NoError(t, os.WriteFile(app, []byte("name: app\nsecret: ${password}\n"), 0o600))
	sectioned := filepath.Join(dir, "app.ini")
	require.NoError(t, os.WriteFile(sectioned, []byte("[Default]\nk = default\n[Test]\nk = test\n"), 0o600))
	t.Setenv("PORT", "9090")
	t.Setenv("STRATA_CLI_NAME", "env")

	testcases := []struct {
		description string
		args        []string
		expected    string
		err         string
	}{
		{
			description: "placeholder from env",
			args:        []string{"-f", base, "--env", "get", "port", "--type", "int"},
			expected:    "9090\n",
		},
		{
			description: "unresolved placeholder without env",
			args:        []string{"-f", base, "get", "port"},
			err:         `references undefined key "PORT"`,
		},
		{
			description: "later file wins",
			args:        []string{"-f", base, "-f", app, "get", "name"},
			expected:    "app\n",
		},
		{
			description: "env prefix wins over files",
			args:        []string{"-f", base, "--env-prefix", "STRATA_CLI_", "get", "name"},
			expected:    "env\n",
		},
		{
			description: "set wins over env",
			args:        []string{"-f", base, "--env", "--set", "PORT=1", "get", "port"},
			expected:    "1\n",
		},
		{
			description: "list",
			args:        []string{"-f", base, "get", "hosts", "-t", "[]string"},
			expected:    "a\nb\n",
		},
		{
			description: "rune list",
			args:        []string{"-f", base, "--set", "seps=;, :", "get", "seps", "-t", "[]rune"},
			expected:    "; :\n",
		},
		{
			description: "context section",
			args:        []string{"-f", sectioned, "--context", "Test", "get", "k"},
			expected:    "test\n",
		},
		{
			description: "missing key",
			args:        []string{"-f", base, "get", "absent"},
			expected:    "",
		},
		{
			description: "missing required key",
			args:        []string{"-f", base, "get", "absent", "--required"},
			err:         `key "absent": not defined in any source`,
		},
		{
			description: "conversion error",
			args:        []string{"-f", base, "get", "name", "--type", "bool"},
			err:         `cannot convert "base" to bool`,
		},
		{
			description: "unknown type",
			args:        []string{"-f", base, "get", "name", "--type", "date"},
			err:         "no converter registered for type: date",
		},
		{
			description: "invalid set",
			args:        []string{"--set", "novalue", "get", "k"},
			err:         `invalid --set "novalue"`,
		},
		{
			description: "no source",
			args:        []string{"get", "k"},
			err:         "new chain: ",
		},
		{
			description: "keys",
			args:        []string{"-f", base, "-f", app, "keys"},
			expected:    "hosts\nname\nport\nsecret\ntimeout\n",
		},
		{
			description: "keys with prefix",
			args:        []string{"-f", base, "keys", "t"},
			expected:    "timeout\n",
		},
		{
			description: "explain",
			args:        []string{"-f", base, "-f", app, "--set", "password=s3cr3t", "explain", "name"},
			expected: "name has value[app] that is loaded by source[file:" + app + "].\n" +
				"Here are other value(source)s:\n  - base(file:" + base + ")\n\n",
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			out := &bytes.Buffer{}
			cmd := newRootCmd()
			cmd.SetArgs(testcase.args)
			cmd.SetOut(out)
			cmd.SetErr(&bytes.Buffer{})

			err := cmd.Execute()
			if testcase.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), testcase.err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, testcase.expected, out.String())
		})
	}
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.properties")
	require.NoError(t, os.WriteFile(path, []byte("k=v1\n"), 0o600))

	out := &syncBuffer{}
	cmd := newRootCmd()
	cmd.SetArgs([]string{"-f", path, "watch", "k"})
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- cmd.ExecuteContext(ctx)
	}()
	require.Eventually(t, func() bool { return out.String() == "v1\n" }, 10*time.Second, 10*time.Millisecond)
	time.Sleep(time.Second) // wait for the watcher to start

	require.NoError(t, os.WriteFile(path, []byte("k=v2\n"), 0o600))
	require.Eventually(t, func() bool { return strings.Contains(out.String(), "v2\n") }, 10*time.Second, 10*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
}

func TestWatch_noFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--set", "k=v", "watch", "k"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.EqualError(t, cmd.Execute(), "watch requires at least one file")
}

type syncBuffer struct {
	buffer bytes.Buffer
	mutex  sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return b.buffer.Write(p)
}

func (b *syncBuffer) String() string {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return b.buffer.String()
}
