package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bindec.io/bindec/discrim"
	"bindec.io/bindec/parsers/tokenledger"
)

func vaultFile(t *testing.T, balance uint64) string {
	t.Helper()
	d := discrim.Derive("account", "Vault")
	data := append([]byte{}, d[:]...)
	data = append(data, make([]byte, 32)...)
	var amt [8]byte
	binary.LittleEndian.PutUint64(amt[:], balance)
	data = append(data, amt[:]...)
	data = append(data, 0, 0xAB)

	path := filepath.Join(t.TempDir(), "vault.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write record: %v", err)
	}
	return path
}

func TestRunClassifyFile(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"classify", "--source", tokenledger.Source, "--file", vaultFile(t, 900)}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errOut.String())
	}
	got := out.String()
	if !strings.Contains(got, "Type: Vault") {
		t.Fatalf("output missing type: %s", got)
	}
	if !strings.Contains(got, `"balance":900`) {
		t.Fatalf("output missing payload: %s", got)
	}
	if !strings.Contains(got, "Fingerprint: bafkrei") {
		t.Fatalf("output missing fingerprint: %s", got)
	}
}

func TestRunClassifyPretty(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"classify", "--source", tokenledger.Source, "--pretty", "--file", vaultFile(t, 1)}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), `"balance": 1`) {
		t.Fatalf("pretty output not indented: %s", out.String())
	}
}

func TestRunClassifyUnknownSource(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"classify", "--source", "NobodyHome", "--b64", "AAAA"}, &out, &errOut)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "UnknownSource") {
		t.Fatalf("stderr should name the error kind: %s", errOut.String())
	}
}

func TestRunDiscrim(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"discrim", "account", "Widget"}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errOut.String())
	}
	if strings.TrimSpace(out.String()) != "268996af22d33435" {
		t.Fatalf("discrim output = %q", out.String())
	}
}

func TestRunTypes(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"types", "--source", tokenledger.Source}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errOut.String())
	}
	got := out.String()
	if !strings.Contains(got, "Vault") || !strings.Contains(got, "transfer (message)") {
		t.Fatalf("types output = %s", got)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"bogus"}, &out, &errOut); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
}
