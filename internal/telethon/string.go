// Package telethon implements the Telethon session formats: the
// version-prefixed base64 session string and the SQLite .session file.
package telethon

import (
	"encoding/base64"
	"encoding/binary"
	"net"

	"github.com/nazar220160/TGConvertor/internal/session"
	"github.com/nazar220160/TGConvertor/internal/telegram"
)

// stringVersion prefixes every Telethon session string.
const stringVersion = "1"

// Decoded payload sizes: dc id + ip + port + auth key. The IP width is
// inferred from the total length, there is no family tag on the wire.
const (
	ipv4PayloadSize = 1 + 4 + 2 + session.AuthKeySize
	ipv6PayloadSize = 1 + 16 + 2 + session.AuthKeySize
)

// FromString decodes a Telethon session string. The string carries an
// explicit endpoint but no user identity.
func FromString(token string) (*session.Record, error) {
	if len(token) < 2 {
		return nil, session.Validationf("telethon session string too short")
	}
	raw, err := base64.URLEncoding.DecodeString(token[1:])
	if err != nil {
		return nil, session.Validationf("session string is not valid base64: %v", err)
	}

	var ipLen int
	switch len(raw) {
	case ipv4PayloadSize:
		ipLen = 4
	case ipv6PayloadSize:
		ipLen = 16
	default:
		return nil, session.Validationf(
			"decoded session string has unexpected length %d, want %d or %d",
			len(raw), ipv4PayloadSize, ipv6PayloadSize)
	}

	dcID := int(raw[0])
	ip := net.IP(raw[1 : 1+ipLen])
	port := int(binary.BigEndian.Uint16(raw[1+ipLen:]))
	authKey := raw[1+ipLen+2:]

	return session.New(dcID, authKey, session.WithEndpoint(ip.String(), port))
}

// EncodeString emits a Telethon session string, keeping base64 padding as
// Telethon does. A record without an explicit endpoint gets the static
// default for its (dc id, test mode) pair.
func EncodeString(r *session.Record) (string, error) {
	if len(r.AuthKey) != session.AuthKeySize {
		return "", session.Validationf("auth_key must be %d bytes, got %d",
			session.AuthKeySize, len(r.AuthKey))
	}

	addr, port, err := endpoint(r)
	if err != nil {
		return "", err
	}
	ip := net.ParseIP(addr)
	if ip == nil {
		return "", session.Validationf("server_address %q is not an IP address", addr)
	}
	if ip4 := ip.To4(); ip4 != nil {
		ip = ip4
	}

	buf := make([]byte, 0, 1+len(ip)+2+session.AuthKeySize)
	buf = append(buf, byte(r.DCID))
	buf = append(buf, ip...)
	buf = binary.BigEndian.AppendUint16(buf, uint16(port))
	buf = append(buf, r.AuthKey...)

	return stringVersion + base64.URLEncoding.EncodeToString(buf), nil
}

func endpoint(r *session.Record) (string, int, error) {
	if r.ServerAddress != "" && r.Port != 0 {
		return r.ServerAddress, r.Port, nil
	}
	return telegram.DataCenter(r.DCID, r.TestMode)
}
