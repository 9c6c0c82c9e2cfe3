// Package sprite defines the drawable things in Mirefall: the hero, the
// monster roster, and the weapon icons. Each one is described by a Descriptor
// that names the image asset backing it; the preloader resolves descriptors
// to images and the fallback package draws stand-ins when an asset is missing.
package sprite

import (
	"fmt"
	"path/filepath"
)

// Kind classifies a sprite for rendering and fallback dispatch.
type Kind int

const (
	KindHero Kind = iota
	KindMonster
	KindWeapon
)

// String returns the manifest spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindHero:
		return "hero"
	case KindMonster:
		return "monster"
	case KindWeapon:
		return "weapon"
	default:
		return "unknown"
	}
}

// ParseKind converts a manifest kind string back to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "hero":
		return KindHero, nil
	case "monster":
		return KindMonster, nil
	case "weapon":
		return KindWeapon, nil
	default:
		return 0, fmt.Errorf("unknown sprite kind: %q", s)
	}
}

// HeroName is the single hero sprite.
const HeroName = "hero"

// MonsterNames is the monster roster in draw order. The order is part of the
// scene layout, so keep it stable.
var MonsterNames = []string{
	"goblin",
	"skeleton",
	"orc",
	"bat",
	"slime",
	"spider",
	"wraith",
	"troll",
	"dragon",
}

// WeaponNames is the weapon icon roster in hotbar order.
var WeaponNames = []string{
	"sword",
	"axe",
	"bow",
	"staff",
	"dagger",
	"shield",
}

// Descriptor names one preloadable sprite asset.
type Descriptor struct {
	Name      string
	Kind      Kind
	ImagePath string
}

// Validate rejects descriptors the loader cannot work with.
func (d Descriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("sprite descriptor has no name")
	}
	switch d.Kind {
	case KindHero, KindMonster, KindWeapon:
	default:
		return fmt.Errorf("sprite %s: invalid kind %d", d.Name, d.Kind)
	}
	return nil
}

// Roster returns descriptors for every sprite the game draws, with image
// paths rooted at assetsDir. Hero first, then monsters, then weapons.
func Roster(assetsDir string) []Descriptor {
	out := make([]Descriptor, 0, 1+len(MonsterNames)+len(WeaponNames))
	out = append(out, Descriptor{
		Name:      HeroName,
		Kind:      KindHero,
		ImagePath: filepath.Join(assetsDir, "hero.png"),
	})
	for _, name := range MonsterNames {
		out = append(out, Descriptor{
			Name:      name,
			Kind:      KindMonster,
			ImagePath: filepath.Join(assetsDir, "monsters", name+".png"),
		})
	}
	for _, name := range WeaponNames {
		out = append(out, Descriptor{
			Name:      name,
			Kind:      KindWeapon,
			ImagePath: filepath.Join(assetsDir, "weapons", name+".png"),
		})
	}
	return out
}

// ByName finds a descriptor in a roster.
func ByName(roster []Descriptor, name string) (Descriptor, bool) {
	for _, d := range roster {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}
