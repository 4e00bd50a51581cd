package climb

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/skyclimb/internal/config"
)

// DefaultSkinID is always owned.
const DefaultSkinID = "default"

var (
	ErrInsufficientCoins = errors.New("climb: not enough coins")
	ErrUnknownSkin       = errors.New("climb: unknown skin")
	ErrSkinNotOwned      = errors.New("climb: skin not owned")
)

// Economy tracks the persistent currency, double-jump credits and
// cosmetics. Every change is written through to Prefs.
type Economy struct {
	prefs *Prefs
	shop  config.ShopConfig

	coins       int
	doubleJumps int
	owned       []string
	current     string
}

// SkinStatus is a shop row.
type SkinStatus struct {
	config.Skin
	Owned    bool
	Selected bool
}

func newEconomy(prefs *Prefs, shop config.ShopConfig) *Economy {
	e := &Economy{
		prefs:       prefs,
		shop:        shop,
		coins:       prefs.Int(KeyTotalCoins),
		doubleJumps: prefs.Int(KeyDoubleJumpCount),
		owned:       prefs.Strings(KeyOwnedSkins),
		current:     prefs.String(KeyCurrentSkin, DefaultSkinID),
	}
	if !slices.Contains(e.owned, DefaultSkinID) {
		e.owned = append([]string{DefaultSkinID}, e.owned...)
	}
	if _, ok := e.skin(e.current); !ok || !e.Owns(e.current) {
		e.current = DefaultSkinID
	}
	return e
}

// Coins returns the currency balance.
func (e *Economy) Coins() int { return e.coins }

// DoubleJumps returns the number of purchased double-jump credits.
func (e *Economy) DoubleJumps() int { return e.doubleJumps }

// AddCoins credits collected currency.
func (e *Economy) AddCoins(n int) {
	if n <= 0 {
		return
	}
	e.coins += n
	e.prefs.SetInt(KeyTotalCoins, e.coins)
}

// ConsumeDoubleJump spends one credit, reporting false when none is left.
func (e *Economy) ConsumeDoubleJump() bool {
	if e.doubleJumps <= 0 {
		return false
	}
	e.doubleJumps--
	e.prefs.SetInt(KeyDoubleJumpCount, e.doubleJumps)
	return true
}

// BuyDoubleJump exchanges coins for one double-jump credit.
func (e *Economy) BuyDoubleJump() error {
	if e.coins < e.shop.DoubleJumpPrice {
		return fmt.Errorf("%w: double jump costs %d, have %d", ErrInsufficientCoins, e.shop.DoubleJumpPrice, e.coins)
	}
	e.coins -= e.shop.DoubleJumpPrice
	e.doubleJumps++
	e.prefs.SetInt(KeyTotalCoins, e.coins)
	e.prefs.SetInt(KeyDoubleJumpCount, e.doubleJumps)
	return nil
}

// BuySkin purchases a skin. Buying an owned skin is a no-op.
func (e *Economy) BuySkin(id string) error {
	skin, ok := e.skin(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSkin, id)
	}
	if e.Owns(id) {
		return nil
	}
	if e.coins < skin.Price {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientCoins, skin.Name, skin.Price, e.coins)
	}
	e.coins -= skin.Price
	e.owned = append(e.owned, id)
	e.prefs.SetInt(KeyTotalCoins, e.coins)
	e.prefs.SetStrings(KeyOwnedSkins, e.owned)
	return nil
}

// SelectSkin switches to an owned skin.
func (e *Economy) SelectSkin(id string) error {
	if _, ok := e.skin(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSkin, id)
	}
	if !e.Owns(id) {
		return fmt.Errorf("%w: %q", ErrSkinNotOwned, id)
	}
	e.current = id
	e.prefs.SetString(KeyCurrentSkin, id)
	return nil
}

// Owns reports whether a skin has been bought.
func (e *Economy) Owns(id string) bool {
	return slices.Contains(e.owned, id)
}

// CurrentSkin returns the selected skin.
func (e *Economy) CurrentSkin() config.Skin {
	if s, ok := e.skin(e.current); ok {
		return s
	}
	return config.Skin{ID: DefaultSkinID, Name: "Default"}
}

// Skins lists the shop in configuration order.
func (e *Economy) Skins() []SkinStatus {
	out := make([]SkinStatus, 0, len(e.shop.Skins))
	for _, s := range e.shop.Skins {
		out = append(out, SkinStatus{Skin: s, Owned: e.Owns(s.ID), Selected: s.ID == e.current})
	}
	return out
}

// DoubleJumpPrice returns the price of one credit.
func (e *Economy) DoubleJumpPrice() int {
	return e.shop.DoubleJumpPrice
}

func (e *Economy) skin(id string) (config.Skin, bool) {
	for _, s := range e.shop.Skins {
		if s.ID == id {
			return s, true
		}
	}
	return config.Skin{}, false
}
