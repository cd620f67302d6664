// Package pyrogram implements the Pyrogram session formats: the packed
// base64 session string (three historical layouts) and the SQLite .session
// file.
package pyrogram

import (
	"encoding/base64"
	"encoding/binary"
	"strings"

	"github.com/nazar220160/TGConvertor/internal/session"
)

// stringLayout describes one packed layout of the session string. Layouts
// carry no version tag; the decoded byte length is the only discriminator.
type stringLayout struct {
	name       string
	size       int
	hasAPIID   bool
	wideUserID bool // 64-bit user id instead of 32-bit
}

// The three layouts observed in the wild, checked in historical order. Only
// these exact lengths are documented; any other length is rejected rather
// than guessed at.
var stringLayouts = []stringLayout{
	{name: "old-32", size: 263, hasAPIID: false, wideUserID: false},
	{name: "old-64", size: 267, hasAPIID: false, wideUserID: true},
	{name: "current", size: 271, hasAPIID: true, wideUserID: true},
}

func layoutForSize(size int) (stringLayout, bool) {
	for _, l := range stringLayouts {
		if l.size == size {
			return l, true
		}
	}
	return stringLayout{}, false
}

// FromString decodes a Pyrogram session string. Padding characters are
// optional on input. Old layouts carry no api_id and leave it unset; a zero
// user id on the wire maps back to unset.
func FromString(token string) (*session.Record, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(token, "="))
	if err != nil {
		return nil, session.Validationf("session string is not valid base64: %v", err)
	}

	layout, ok := layoutForSize(len(raw))
	if !ok {
		return nil, session.Validationf(
			"decoded session string has unexpected length %d, want 263, 267 or 271", len(raw))
	}

	off := 0
	dcID := int(raw[off])
	off++

	var apiID int32
	if layout.hasAPIID {
		apiID = int32(binary.BigEndian.Uint32(raw[off:]))
		off += 4
	}

	testMode := raw[off] != 0
	off++

	authKey := raw[off : off+session.AuthKeySize]
	off += session.AuthKeySize

	var userID int64
	if layout.wideUserID {
		userID = int64(binary.BigEndian.Uint64(raw[off:]))
		off += 8
	} else {
		userID = int64(binary.BigEndian.Uint32(raw[off:]))
		off += 4
	}

	isBot := raw[off] != 0

	opts := []session.Option{
		session.WithTestMode(testMode),
		session.WithBot(isBot),
	}
	if userID != 0 {
		opts = append(opts, session.WithUserID(userID))
	}
	if layout.hasAPIID && apiID != 0 {
		opts = append(opts, session.WithAPIID(apiID))
	}
	return session.New(dcID, authKey, opts...)
}

// EncodeString emits the current layout without padding. Unset user and api
// ids are written as zero; the unset/zero distinction does not survive this
// format.
func EncodeString(r *session.Record) (string, error) {
	if len(r.AuthKey) != session.AuthKeySize {
		return "", session.Validationf("auth_key must be %d bytes, got %d",
			session.AuthKeySize, len(r.AuthKey))
	}

	buf := make([]byte, 0, 271)
	buf = append(buf, byte(r.DCID))
	buf = binary.BigEndian.AppendUint32(buf, uint32(r.APIIDOrZero()))
	buf = append(buf, boolByte(r.TestMode))
	buf = append(buf, r.AuthKey...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(r.UserIDOrZero()))
	buf = append(buf, boolByte(r.IsBot))

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
