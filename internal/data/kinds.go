// Package data defines entity kinds, orientations and equipment ranks.
package data

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies an entity species, item or NPC type.
// Values match the shared game types of the browser client, so they go
// over the wire unchanged.
type Kind int32

const (
	KindNone Kind = 0

	KindWarrior Kind = 1

	// Mobs
	KindRat         Kind = 2
	KindSkeleton    Kind = 3
	KindGoblin      Kind = 4
	KindOgre        Kind = 5
	KindSpectre     Kind = 6
	KindCrab        Kind = 7
	KindBat         Kind = 8
	KindWizard      Kind = 9
	KindEye         Kind = 10
	KindSnake       Kind = 11
	KindSkeleton2   Kind = 12
	KindBoss        Kind = 13
	KindDeathKnight Kind = 14

	// Armors
	KindFirefox      Kind = 20
	KindClothArmor   Kind = 21
	KindLeatherArmor Kind = 22
	KindMailArmor    Kind = 23
	KindPlateArmor   Kind = 24
	KindRedArmor     Kind = 25
	KindGoldenArmor  Kind = 26

	// Objects
	KindFlask      Kind = 35
	KindBurger     Kind = 36
	KindChest      Kind = 37
	KindFirePotion Kind = 38
	KindCake       Kind = 39

	// NPCs
	KindGuard       Kind = 40
	KindKing        Kind = 41
	KindOctocat     Kind = 42
	KindVillageGirl Kind = 43
	KindVillager    Kind = 44
	KindPriest      Kind = 45
	KindScientist   Kind = 46
	KindAgent       Kind = 47
	KindRick        Kind = 48
	KindNyanCat     Kind = 49
	KindSorcerer    Kind = 50
	KindBeachNpc    Kind = 51
	KindForestNpc   Kind = 52
	KindDesertNpc   Kind = 53
	KindLavaNpc     Kind = 54
	KindCoder       Kind = 55

	// Weapons
	KindSword1      Kind = 60
	KindSword2      Kind = 61
	KindRedSword    Kind = 62
	KindGoldenSword Kind = 63
	KindMorningStar Kind = 64
	KindAxe         Kind = 65
	KindBlueSword   Kind = 66
)

// kindNames maps lower-case names (as used in templates files) to kinds.
var kindNames = map[string]Kind{
	"warrior":      KindWarrior,
	"rat":          KindRat,
	"skeleton":     KindSkeleton,
	"goblin":       KindGoblin,
	"ogre":         KindOgre,
	"spectre":      KindSpectre,
	"crab":         KindCrab,
	"bat":          KindBat,
	"wizard":       KindWizard,
	"eye":          KindEye,
	"snake":        KindSnake,
	"skeleton2":    KindSkeleton2,
	"boss":         KindBoss,
	"deathknight":  KindDeathKnight,
	"firefox":      KindFirefox,
	"clotharmor":   KindClothArmor,
	"leatherarmor": KindLeatherArmor,
	"mailarmor":    KindMailArmor,
	"platearmor":   KindPlateArmor,
	"redarmor":     KindRedArmor,
	"goldenarmor":  KindGoldenArmor,
	"flask":        KindFlask,
	"burger":       KindBurger,
	"chest":        KindChest,
	"firepotion":   KindFirePotion,
	"cake":         KindCake,
	"guard":        KindGuard,
	"king":         KindKing,
	"octocat":      KindOctocat,
	"villagegirl":  KindVillageGirl,
	"villager":     KindVillager,
	"priest":       KindPriest,
	"scientist":    KindScientist,
	"agent":        KindAgent,
	"rick":         KindRick,
	"nyancat":      KindNyanCat,
	"sorcerer":     KindSorcerer,
	"beachnpc":     KindBeachNpc,
	"forestnpc":    KindForestNpc,
	"desertnpc":    KindDesertNpc,
	"lavanpc":      KindLavaNpc,
	"coder":        KindCoder,
	"sword1":       KindSword1,
	"sword2":       KindSword2,
	"redsword":     KindRedSword,
	"goldensword":  KindGoldenSword,
	"morningstar":  KindMorningStar,
	"axe":          KindAxe,
	"bluesword":    KindBlueSword,
}

var kindByValue = func() map[Kind]string {
	m := make(map[Kind]string, len(kindNames))
	for name, k := range kindNames {
		m[k] = name
	}
	return m
}()

// String returns the lower-case kind name, or the numeric value for unknown kinds.
func (k Kind) String() string {
	if name, ok := kindByValue[k]; ok {
		return name
	}
	return strconv.Itoa(int(k))
}

// ParseKind resolves a kind by name (case-insensitive) or by its numeric value.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	if k, ok := kindNames[strings.ToLower(s)]; ok {
		return k, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return KindNone, fmt.Errorf("unknown entity kind %q", s)
	}
	return Kind(n), nil
}

// UnmarshalYAML accepts either a kind name or its number.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: entity kind must be a scalar", node.Line)
	}
	parsed, err := ParseKind(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*k = parsed
	return nil
}

// MarshalYAML writes the kind by name.
func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// IsMob reports whether kind is a hostile creature.
func IsMob(k Kind) bool {
	return k >= KindRat && k <= KindDeathKnight
}

// IsNpc reports whether kind is a passive non-player character.
func IsNpc(k Kind) bool {
	return k >= KindGuard && k <= KindCoder
}

// IsArmor reports whether kind can be equipped as armor.
func IsArmor(k Kind) bool {
	return k >= KindFirefox && k <= KindGoldenArmor
}

// IsWeapon reports whether kind can be equipped as a weapon.
func IsWeapon(k Kind) bool {
	return k >= KindSword1 && k <= KindBlueSword
}

// IsHealingItem reports whether looting kind restores health.
func IsHealingItem(k Kind) bool {
	return k == KindFlask || k == KindBurger || k == KindCake
}

// IsChest reports whether kind is a chest.
func IsChest(k Kind) bool {
	return k == KindChest
}
