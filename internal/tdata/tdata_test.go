package tdata

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nazar220160/TGConvertor/internal/session"
	"github.com/nazar220160/TGConvertor/internal/telegram"
)

var testKey = bytes.Repeat([]byte{'c'}, session.AuthKeySize)

// memContainer stands in for the external encrypted-container library: it
// serializes accounts into a single plain file under the folder.
type memContainer struct {
	accounts map[string]Account
}

func newMemContainer() *memContainer {
	return &memContainer{accounts: make(map[string]Account)}
}

func (c *memContainer) Read(folder string) (Account, error) {
	acc, ok := c.accounts[folder]
	if !ok {
		return Account{}, errors.New("no account data in folder")
	}
	return acc, nil
}

func (c *memContainer) Write(folder string, acc Account, _ telegram.APIProfile) error {
	if err := os.WriteFile(filepath.Join(folder, "key_datas"), []byte{0}, 0o600); err != nil {
		return err
	}
	c.accounts[folder] = acc
	return nil
}

func withContainer(t *testing.T, c Container) {
	t.Helper()
	Register(c)
	t.Cleanup(func() { Register(nil) })
}

func TestUnavailableWithoutContainer(t *testing.T) {
	withContainer(t, nil)

	if _, err := FromFolder(t.TempDir()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("FromFolder error = %v, want ErrUnavailable", err)
	}
	rec, err := session.New(2, testKey, session.WithUserID(1))
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteFolder(rec, t.TempDir(), telegram.TelegramDesktop); !errors.Is(err, ErrUnavailable) {
		t.Errorf("WriteFolder error = %v, want ErrUnavailable", err)
	}
}

func TestWriteRequiresUserID(t *testing.T) {
	withContainer(t, newMemContainer())

	rec, err := session.New(2, testKey)
	if err != nil {
		t.Fatal(err)
	}
	folder := filepath.Join(t.TempDir(), "tdata")
	err = WriteFolder(rec, folder, telegram.TelegramDesktop)
	if !errors.Is(err, session.ErrUserIDRequired) {
		t.Fatalf("error = %v, want ErrUserIDRequired", err)
	}
	// The precondition fails before any I/O: no partial folder.
	if _, statErr := os.Stat(folder); !os.IsNotExist(statErr) {
		t.Error("failed export must not create the folder")
	}
}

func TestFolderRoundTrip(t *testing.T) {
	withContainer(t, newMemContainer())

	rec, err := session.New(2, testKey, session.WithUserID(112233445))
	if err != nil {
		t.Fatal(err)
	}
	folder := filepath.Join(t.TempDir(), "tdata")
	if err := WriteFolder(rec, folder, telegram.TelegramDesktop); err != nil {
		t.Fatalf("WriteFolder failed: %v", err)
	}

	got, err := FromFolder(folder)
	if err != nil {
		t.Fatalf("FromFolder failed: %v", err)
	}
	if got.DCID != 2 {
		t.Errorf("dc id = %d, want 2", got.DCID)
	}
	if got.UserIDOrZero() != 112233445 {
		t.Errorf("user id = %d, want 112233445", got.UserIDOrZero())
	}
	if string(got.AuthKey) != string(testKey) {
		t.Error("auth key corrupted in round trip")
	}
}

func TestFromFolderMissingPath(t *testing.T) {
	withContainer(t, newMemContainer())

	_, err := FromFolder(filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("FromFolder accepted a missing path")
	}
	if errors.Is(err, ErrUnavailable) || session.IsValidation(err) {
		t.Errorf("missing folder should be a resource error, got %v", err)
	}
}
