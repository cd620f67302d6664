// Package converter orchestrates session conversions: load a record through
// any codec, optionally enrich it with a user id through the network
// collaborator, and export it through any codec.
package converter

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/nazar220160/TGConvertor/internal/pyrogram"
	"github.com/nazar220160/TGConvertor/internal/session"
	"github.com/nazar220160/TGConvertor/internal/tdata"
	"github.com/nazar220160/TGConvertor/internal/telegram"
	"github.com/nazar220160/TGConvertor/internal/telethon"
)

// UserResolver is the excluded network collaborator that asks Telegram who
// owns a session. Implementations may dial out; nothing else in this package
// does.
type UserResolver interface {
	LookupCurrentUser(ctx context.Context, rec *session.Record) (int64, error)
}

// SessionManager owns one session record and the API profile used for any
// downstream client construction. Codec operations are pure synchronous
// transforms; GetUserID and Validate are the only operations that may block
// on the network.
type SessionManager struct {
	record   *session.Record
	api      telegram.APIProfile
	resolver UserResolver
}

// Option configures a SessionManager at construction time.
type Option func(*SessionManager)

// WithAPI selects the device identity profile, replacing the Telegram
// Desktop default.
func WithAPI(p telegram.APIProfile) Option {
	return func(m *SessionManager) { m.api = p }
}

// WithResolver injects the network user-lookup collaborator. Without one,
// GetUserID fails on records that carry no user id.
func WithResolver(r UserResolver) Option {
	return func(m *SessionManager) { m.resolver = r }
}

// New wraps an already-constructed record.
func New(rec *session.Record, opts ...Option) *SessionManager {
	m := &SessionManager{record: rec, api: telegram.TelegramDesktop}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func FromPyrogramString(token string, opts ...Option) (*SessionManager, error) {
	rec, err := pyrogram.FromString(token)
	if err != nil {
		return nil, err
	}
	return New(rec, opts...), nil
}

func FromPyrogramFile(path string, opts ...Option) (*SessionManager, error) {
	rec, err := pyrogram.FromFile(path)
	if err != nil {
		return nil, err
	}
	return New(rec, opts...), nil
}

func FromTelethonString(token string, opts ...Option) (*SessionManager, error) {
	rec, err := telethon.FromString(token)
	if err != nil {
		return nil, err
	}
	return New(rec, opts...), nil
}

func FromTelethonFile(path string, opts ...Option) (*SessionManager, error) {
	rec, err := telethon.FromFile(path)
	if err != nil {
		return nil, err
	}
	return New(rec, opts...), nil
}

func FromTDataFolder(folder string, opts ...Option) (*SessionManager, error) {
	rec, err := tdata.FromFolder(folder)
	if err != nil {
		return nil, err
	}
	return New(rec, opts...), nil
}

// Record exposes the managed record. Callers treat it as read-only.
func (m *SessionManager) Record() *session.Record { return m.record }

// API returns the device identity profile in use.
func (m *SessionManager) API() telegram.APIProfile { return m.api }

// AuthKeyHex renders the auth key for display.
func (m *SessionManager) AuthKeyHex() string { return hex.EncodeToString(m.record.AuthKey) }

// apiID is the effective api_id for Pyrogram exports: the record's own when
// it carries one, the profile's otherwise.
func (m *SessionManager) apiID() int32 {
	if m.record.APIID != nil && *m.record.APIID != 0 {
		return *m.record.APIID
	}
	return m.api.APIID
}

// pyrogramView is the record as the Pyrogram codecs should see it, with the
// profile api_id filled in when the source format carried none. The managed
// record itself stays untouched.
func (m *SessionManager) pyrogramView() *session.Record {
	rec := *m.record
	id := m.apiID()
	rec.APIID = &id
	return &rec
}

func (m *SessionManager) ToPyrogramString() (string, error) {
	return pyrogram.EncodeString(m.pyrogramView())
}

func (m *SessionManager) ToPyrogramFile(path string) error {
	return pyrogram.WriteFile(m.pyrogramView(), path)
}

func (m *SessionManager) ToTelethonString() (string, error) {
	return telethon.EncodeString(m.record)
}

func (m *SessionManager) ToTelethonFile(path string) error {
	return telethon.WriteFile(m.record, path)
}

// ToTDataFolder exports the session as a tdata folder. The format requires a
// user id, so the export chains GetUserID first; this is the one conversion
// path whose success depends on the external collaborator when the source
// format carried no identity.
func (m *SessionManager) ToTDataFolder(ctx context.Context, folder string) error {
	if _, err := m.GetUserID(ctx); err != nil {
		return fmt.Errorf("fetching user id during folder export: %w", err)
	}
	return tdata.WriteFolder(m.record, folder, m.api)
}

// GetUserID returns the session's user id, resolving it over the network on
// first use. Exactly one lookup attempt is made per call and the resolved id
// is cached on the record; an unresolved state persists, so callers may
// simply call again to retry.
func (m *SessionManager) GetUserID(ctx context.Context) (int64, error) {
	if id := m.record.UserIDOrZero(); id != 0 {
		return id, nil
	}
	if m.resolver == nil {
		return 0, errors.New("session has no user_id and no user resolver is configured")
	}
	id, err := m.resolver.LookupCurrentUser(ctx, m.record)
	if err != nil {
		return 0, fmt.Errorf("user lookup failed: %w", err)
	}
	if id == 0 {
		return 0, session.Validationf("user lookup returned no identity")
	}
	m.record.SetUserID(id)
	return id, nil
}

// Validate checks the session against the live server by performing a user
// lookup. A clean "no identity" answer is false without error; transport
// failures surface as errors.
func (m *SessionManager) Validate(ctx context.Context) (bool, error) {
	if m.resolver == nil {
		return false, errors.New("no user resolver is configured")
	}
	id, err := m.resolver.LookupCurrentUser(ctx, m.record)
	if err != nil {
		return false, fmt.Errorf("session validation failed: %w", err)
	}
	if id == 0 {
		return false, nil
	}
	m.record.SetUserID(id)
	return true, nil
}
