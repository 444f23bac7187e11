package spawn

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/bqsolo/internal/data"
	"github.com/udisondev/bqsolo/internal/game/loot"
	"github.com/udisondev/bqsolo/internal/model"
)

// Template defaults for fields a templates file leaves unset.
const (
	DefaultMobMaxHP        = 30
	DefaultMobArmor        = 4
	DefaultMobDamage       = 6
	DefaultMobRespawnDelay = 12 * time.Second
)

// DefaultTemplates returns the starter area population.
func DefaultTemplates() model.WorldTemplates {
	return model.WorldTemplates{
		Mobs: []model.MobTemplate{
			{Kind: data.KindRat, X: 70, Y: 68, MaxHP: 20, Damage: 6, Loot: loot.Kinds(data.KindFlask), RespawnDelay: 8 * time.Second},
			{Kind: data.KindGoblin, X: 76, Y: 72, MaxHP: 35, Damage: 9, Loot: loot.Kinds(data.KindAxe), RespawnDelay: 12 * time.Second},
			{Kind: data.KindSkeleton, X: 82, Y: 69, MaxHP: 30, Damage: 8, Loot: loot.Kinds(data.KindMailArmor), RespawnDelay: 16 * time.Second},
		},
		Npcs: []model.NpcTemplate{
			{Kind: data.KindGuard, X: 60, Y: 64, Orientation: data.OrientationDown},
			{Kind: data.KindVillager, X: 62, Y: 68, Orientation: data.OrientationRight},
			{Kind: data.KindPriest, X: 67, Y: 61, Orientation: data.OrientationDown},
		},
		Chests: []model.ChestTemplate{
			{X: 74, Y: 67, Loot: loot.Kinds(data.KindBurger, data.KindFlask)},
			{X: 80, Y: 74, Loot: loot.Kinds(data.KindCake, data.KindRedArmor)},
		},
	}
}

// LoadTemplates loads the world population from a YAML file.
// An empty path or a missing file yields DefaultTemplates.
func LoadTemplates(path string) (model.WorldTemplates, error) {
	if path == "" {
		return DefaultTemplates(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultTemplates(), nil
		}
		return model.WorldTemplates{}, fmt.Errorf("reading templates %s: %w", path, err)
	}

	var t model.WorldTemplates
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return model.WorldTemplates{}, fmt.Errorf("parsing templates %s: %w", path, err)
	}
	if err := validateTemplates(t); err != nil {
		return model.WorldTemplates{}, fmt.Errorf("validating templates %s: %w", path, err)
	}
	return t, nil
}

func validateTemplates(t model.WorldTemplates) error {
	for i, m := range t.Mobs {
		if !data.IsMob(m.Kind) {
			return fmt.Errorf("mob #%d: %v is not a mob kind", i, m.Kind)
		}
	}
	for i, n := range t.Npcs {
		if !data.IsNpc(n.Kind) {
			return fmt.Errorf("npc #%d: %v is not an npc kind", i, n.Kind)
		}
	}
	return nil
}
