// Package tdata maps Telegram Desktop's multi-account tdata folder onto the
// common session record. The encrypted container layout itself is produced
// and parsed by an external implementation behind the Container interface;
// this package only converts between its account object and a Record.
package tdata

import (
	"errors"
	"fmt"
	"os"

	"github.com/nazar220160/TGConvertor/internal/session"
	"github.com/nazar220160/TGConvertor/internal/telegram"
)

// Account is the subset of a tdata account exchanged with the container
// implementation: the primary account's key material plus its identity.
type Account struct {
	AuthKey []byte
	DCID    int
	UserID  int64
}

// Container reads and writes the encrypted Telegram Desktop local storage.
// Read returns the primary account of the folder; Write serializes a fresh
// single-account folder under the given device identity.
type Container interface {
	Read(folder string) (Account, error)
	Write(folder string, account Account, device telegram.APIProfile) error
}

// ErrUnavailable is returned when no container implementation was registered
// at startup, so the tdata format is unsupported in this build.
var ErrUnavailable = errors.New("tdata format unsupported in this build: no container registered")

var container Container

// Register installs the container implementation. Expected to be called once
// at startup; passing nil removes it.
func Register(c Container) { container = c }

// Available reports whether a container implementation is registered.
func Available() bool { return container != nil }

// FromFolder loads the primary account of a tdata folder.
func FromFolder(folder string) (*session.Record, error) {
	if !Available() {
		return nil, ErrUnavailable
	}
	if _, err := os.Stat(folder); err != nil {
		return nil, fmt.Errorf("tdata folder not readable: %w", err)
	}

	acc, err := container.Read(folder)
	if err != nil {
		return nil, fmt.Errorf("reading tdata folder: %w", err)
	}

	var opts []session.Option
	if acc.UserID != 0 {
		opts = append(opts, session.WithUserID(acc.UserID))
	}
	return session.New(acc.DCID, acc.AuthKey, opts...)
}

// WriteFolder serializes the record as a fresh single-account tdata folder.
// Unlike every other format, tdata cannot omit the user id; the precondition
// runs before any filesystem work so a failed export leaves nothing behind.
func WriteFolder(r *session.Record, folder string, device telegram.APIProfile) error {
	if !Available() {
		return ErrUnavailable
	}
	if r.UserID == nil || *r.UserID == 0 {
		return session.ErrUserIDRequired
	}
	if len(r.AuthKey) != session.AuthKeySize {
		return session.Validationf("auth_key must be %d bytes, got %d",
			session.AuthKeySize, len(r.AuthKey))
	}

	if err := os.MkdirAll(folder, 0o700); err != nil {
		return fmt.Errorf("creating tdata folder: %w", err)
	}
	acc := Account{
		AuthKey: r.AuthKey,
		DCID:    r.DCID,
		UserID:  *r.UserID,
	}
	if err := container.Write(folder, acc, device); err != nil {
		return fmt.Errorf("writing tdata folder: %w", err)
	}
	return nil
}
