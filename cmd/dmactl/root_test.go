package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute() = %v", err)
	}

	if got := out.String(); !strings.Contains(got, "dmactl "+version) {
		t.Errorf("output = %q, want it to contain %q", got, "dmactl "+version)
	}
}

func TestCreateAdminCmd_RequiredFlags(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"create-admin", "--email", "root@dma.test"})

	if err := cmd.Execute(); err == nil {
		t.Error("cmd.Execute() = nil, want: missing required flags error")
	}
}

func TestMigrateCmd_Subcommands(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()
	for _, name := range []string{"up", "down"} {
		sub, _, err := cmd.Find([]string{"migrate", name})
		if err != nil || sub.Name() != name {
			t.Errorf("cmd.Find(migrate %s) = %v, %v", name, sub, err)
		}
	}
}
