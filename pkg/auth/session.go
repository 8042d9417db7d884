// Package auth provides session management for the stockroom API.
//
// Generate session keys with `openssl rand -base64 32`. HMAC keys must be
// 32 or 64 bytes; AES encryption keys must be 16, 24, or 32 bytes.
package auth

import (
	"bytes"
	"context"
	"encoding/base32"
	"encoding/gob"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
)

const (
	redisSessionPrefix = "stockroom:session:"
	sessionTTL         = 7 * 24 * time.Hour
)

// RedisStore implements sessions.Store with server-side storage in Redis.
// The client cookie carries only an encrypted session ID; values live under
// "stockroom:session:<id>" with a TTL matching the cookie MaxAge. Values are
// gob-encoded, so custom types need gob.Register before first use.
type RedisStore struct {
	rdb     *redis.Client
	codecs  []securecookie.Codec
	options *sessions.Options
}

// NewSessionStore builds a Redis-backed session store. authKey signs the
// cookie, encryptionKey encrypts the session ID inside it. secureCookie
// should be true everywhere except localhost development.
func NewSessionStore(rdb *redis.Client, authKey, encryptionKey []byte, secureCookie bool) *RedisStore {
	return &RedisStore{
		rdb:    rdb,
		codecs: securecookie.CodecsFromPairs(authKey, encryptionKey),
		options: &sessions.Options{
			Path:     "/",
			MaxAge:   int(sessionTTL / time.Second),
			HttpOnly: true,
			Secure:   secureCookie,
			SameSite: http.SameSiteLaxMode,
		},
	}
}

// Get returns the named session via the request registry.
func (s *RedisStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New decodes the session cookie and loads values from Redis. Any failure
// along the way (no cookie, tampered cookie, expired Redis key) yields a
// fresh session rather than an error.
func (s *RedisStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.options
	session.Options = &opts
	session.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return session, nil
	}

	var id string
	if err := securecookie.DecodeMulti(name, c.Value, &id, s.codecs...); err != nil {
		return session, nil
	}

	session.ID = id
	if err := s.load(r.Context(), session); err != nil {
		return session, nil
	}
	session.IsNew = false
	return session, nil
}

// Save writes the session values to Redis and sets the encrypted cookie.
// A negative MaxAge deletes both the Redis key and the cookie.
func (s *RedisStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge < 0 {
		if session.ID != "" {
			_ = s.rdb.Del(r.Context(), redisSessionPrefix+session.ID).Err()
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = newSessionID()
	}

	if err := s.store(r.Context(), session); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.codecs...)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

func newSessionID() string {
	raw := securecookie.GenerateRandomKey(32)
	return strings.TrimRight(base32.StdEncoding.EncodeToString(raw), "=")
}

func (s *RedisStore) store(ctx context.Context, session *sessions.Session) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(session.Values); err != nil {
		return fmt.Errorf("encode session values: %w", err)
	}
	ttl := time.Duration(session.Options.MaxAge) * time.Second
	if err := s.rdb.Set(ctx, redisSessionPrefix+session.ID, buf.Bytes(), ttl).Err(); err != nil {
		return fmt.Errorf("set session in redis: %w", err)
	}
	return nil
}

func (s *RedisStore) load(ctx context.Context, session *sessions.Session) error {
	data, err := s.rdb.Get(ctx, redisSessionPrefix+session.ID).Bytes()
	if err != nil {
		return fmt.Errorf("get session from redis: %w", err)
	}
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(&session.Values)
}
