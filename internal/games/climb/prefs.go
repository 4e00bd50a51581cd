package climb

import (
	"encoding/json"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
)

// Persistent keys.
const (
	KeyHighScore       = "high_score"
	KeyLastScore       = "last_score"
	KeyTotalCoins      = "total_coins"
	KeyDoubleJumpCount = "double_jump_count"
	KeySoundEnabled    = "sound_enabled"
	KeyCurrentSkin     = "current_skin"
	KeyOwnedSkins      = "owned_skins"
)

// KV is the scalar key-value store the game persists into.
// storage.KV satisfies it.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// MemoryKV is an in-process KV.
type MemoryKV struct {
	mu sync.Mutex
	m  map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{m: make(map[string]string)}
}

// Get returns the value for key.
func (kv *MemoryKV) Get(key string) (string, bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	v, ok := kv.m[key]
	return v, ok, nil
}

// Set stores value under key.
func (kv *MemoryKV) Set(key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.m[key] = value
	return nil
}

// Prefs reads and writes typed values. Storage failures are logged and
// fall back to defaults; they never stop the simulation.
type Prefs struct {
	kv     KV
	logger *log.Logger
}

func newPrefs(kv KV, logger *log.Logger) *Prefs {
	return &Prefs{kv: kv, logger: logger}
}

func (p *Prefs) raw(key string) (string, bool) {
	v, ok, err := p.kv.Get(key)
	if err != nil {
		p.logger.Warn("preference read failed", "key", key, "err", err)
		return "", false
	}
	return v, ok
}

func (p *Prefs) write(key, value string) {
	if err := p.kv.Set(key, value); err != nil {
		p.logger.Warn("preference write failed", "key", key, "err", err)
	}
}

// Int returns an integer preference, 0 when missing or malformed.
func (p *Prefs) Int(key string) int {
	v, ok := p.raw(key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.logger.Warn("malformed preference", "key", key, "value", v)
		return 0
	}
	return n
}

// SetInt stores an integer preference.
func (p *Prefs) SetInt(key string, n int) {
	p.write(key, strconv.Itoa(n))
}

// Bool returns a boolean preference or def.
func (p *Prefs) Bool(key string, def bool) bool {
	v, ok := p.raw(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// SetBool stores a boolean preference.
func (p *Prefs) SetBool(key string, b bool) {
	p.write(key, strconv.FormatBool(b))
}

// String returns a string preference or def.
func (p *Prefs) String(key, def string) string {
	if v, ok := p.raw(key); ok && v != "" {
		return v
	}
	return def
}

// SetString stores a string preference.
func (p *Prefs) SetString(key, value string) {
	p.write(key, value)
}

// Strings returns a JSON list preference.
func (p *Prefs) Strings(key string) []string {
	v, ok := p.raw(key)
	if !ok {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(v), &out); err != nil {
		p.logger.Warn("malformed preference", "key", key, "err", err)
		return nil
	}
	return out
}

// SetStrings stores a JSON list preference.
func (p *Prefs) SetStrings(key string, values []string) {
	data, err := json.Marshal(values)
	if err != nil {
		p.logger.Warn("cannot encode preference", "key", key, "err", err)
		return
	}
	p.write(key, string(data))
}
