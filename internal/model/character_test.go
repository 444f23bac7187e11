package model

import (
	"testing"

	"github.com/udisondev/bqsolo/internal/data"
)

func TestCharacter_HPBounds(t *testing.T) {
	c := NewCharacter(2, data.KindRat, NewLocation(0, 0), 20)

	if c.CurrentHP() != 20 || c.MaxHP() != 20 {
		t.Fatalf("new character HP = %d/%d, want 20/20", c.CurrentHP(), c.MaxHP())
	}

	if hp := c.ReduceHP(15); hp != 5 {
		t.Errorf("ReduceHP(15) = %d, want 5", hp)
	}
	if hp := c.ReduceHP(100); hp != 0 {
		t.Errorf("ReduceHP(100) = %d, want 0", hp)
	}
	if !c.IsDead() {
		t.Error("IsDead() = false at 0 HP")
	}

	if hp := c.Heal(500); hp != 20 {
		t.Errorf("Heal(500) = %d, want 20", hp)
	}
}

func TestCharacter_SetMaxHP(t *testing.T) {
	c := NewCharacter(2, data.KindWarrior, NewLocation(0, 0), 140)

	c.SetMaxHP(100)
	if c.CurrentHP() != 100 {
		t.Errorf("CurrentHP() = %d after lowering max, want 100", c.CurrentHP())
	}

	c.SetMaxHP(160)
	if c.CurrentHP() != 100 {
		t.Errorf("CurrentHP() = %d after raising max, want 100", c.CurrentHP())
	}
	c.RestoreHP()
	if c.CurrentHP() != 160 {
		t.Errorf("CurrentHP() = %d after RestoreHP, want 160", c.CurrentHP())
	}

	c.SetMaxHP(0)
	if c.MaxHP() != 1 {
		t.Errorf("MaxHP() = %d, want clamp to 1", c.MaxHP())
	}
}
