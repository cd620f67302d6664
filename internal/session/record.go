package session

// AuthKeySize is the exact length of a Telegram authorization key. Every
// codec rejects key material of any other length.
const AuthKeySize = 256

// Record is the common in-memory representation of a Telegram session,
// independent of any on-disk or on-wire format. Exactly one codec decode
// constructs a Record; encoders consume it read-only.
//
// Optional integer fields are pointers so that "unset" stays distinct from
// zero. Some wire encodings only have a zero sentinel for missing values;
// the degradation happens at the encode site, never here.
type Record struct {
	DCID    int
	AuthKey []byte

	UserID   *int64
	IsBot    bool
	TestMode bool
	APIID    *int32

	Phone string

	// ServerAddress/Port override the per-DC default endpoint. Zero values
	// mean "resolve from the static data-center table when needed".
	ServerAddress string
	Port          int

	// TakeoutID is carried by the Telethon file format only.
	TakeoutID *int64
}

// Option mutates a Record during construction.
type Option func(*Record)

func WithUserID(id int64) Option { return func(r *Record) { r.UserID = &id } }

func WithAPIID(id int32) Option { return func(r *Record) { r.APIID = &id } }

func WithBot(isBot bool) Option { return func(r *Record) { r.IsBot = isBot } }

func WithTestMode(test bool) Option { return func(r *Record) { r.TestMode = test } }

func WithPhone(phone string) Option { return func(r *Record) { r.Phone = phone } }

func WithTakeoutID(id int64) Option { return func(r *Record) { r.TakeoutID = &id } }

func WithEndpoint(addr string, port int) Option {
	return func(r *Record) {
		r.ServerAddress = addr
		r.Port = port
	}
}

// New validates the identity fields and builds a Record. The auth key is
// copied so the caller's slice cannot alias the record.
func New(dcID int, authKey []byte, opts ...Option) (*Record, error) {
	if dcID <= 0 {
		return nil, Validationf("dc_id must be positive, got %d", dcID)
	}
	if len(authKey) != AuthKeySize {
		return nil, Validationf("auth_key must be %d bytes, got %d", AuthKeySize, len(authKey))
	}
	r := &Record{
		DCID:    dcID,
		AuthKey: append([]byte(nil), authKey...),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// SetUserID fills in the user id once. It is the single permitted mutation on
// a Record: a one-way enrichment performed by the manager after a network
// lookup. An already-set id is never overwritten.
func (r *Record) SetUserID(id int64) {
	if r.UserID == nil {
		r.UserID = &id
	}
}

// UserIDOrZero degrades an unset user id to the zero sentinel used by wire
// formats that have no way to express "unknown".
func (r *Record) UserIDOrZero() int64 {
	if r.UserID == nil {
		return 0
	}
	return *r.UserID
}

// APIIDOrZero is the api_id counterpart of UserIDOrZero.
func (r *Record) APIIDOrZero() int32 {
	if r.APIID == nil {
		return 0
	}
	return *r.APIID
}
