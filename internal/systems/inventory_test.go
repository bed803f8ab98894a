package systems

import (
	"strings"
	"testing"

	"randroom/internal/core/types/enums"
	"randroom/internal/domain"
)

func TestTryPickup(t *testing.T) {
	g := newTestGame(10, 10)
	player := newPlayer(3, 3)
	orc := newOrc(6, 6)
	potion := newItem("healing potion", enums.ItemHeal)
	potion.SetPos(3, 3)
	es := domain.Entities{player, potion, orc}

	idx := ItemAt(es, player.Pos)
	if idx != 1 {
		t.Fatalf("ItemAt = %d, want 1", idx)
	}

	es, msg, err := TryPickup(g, es, idx)
	if err != nil {
		t.Fatal(err)
	}
	if msg != "You picked up a healing potion!" {
		t.Errorf("msg = %q", msg)
	}
	if len(es) != 2 || es[0] != player || es[1] != orc {
		t.Errorf("entity order broken: %v", es)
	}
	if len(g.Inventory) != 1 || g.Inventory[0] != potion {
		t.Error("potion not in inventory")
	}
}

func TestTryPickup_InventoryFull(t *testing.T) {
	g := newTestGame(10, 10)
	for i := 0; i < domain.MaxInventorySize; i++ {
		g.Inventory = append(g.Inventory, newItem("rock", enums.ItemHeal))
	}
	player := newPlayer(3, 3)
	potion := newItem("potion", enums.ItemHeal)
	potion.SetPos(3, 3)
	es := domain.Entities{player, potion}

	es, _, err := TryPickup(g, es, 1)
	if err == nil || !strings.Contains(err.Error(), "inventory is full") {
		t.Errorf("err = %v", err)
	}
	if len(es) != 2 {
		t.Error("item left the map despite a full inventory")
	}
}

func TestTryPickup_AutoEquip(t *testing.T) {
	g := newTestGame(10, 10)
	dagger := newEquipment("dagger", enums.SlotLeftHand, 2, 0)
	dagger.Equipment.Equipped = true
	g.Inventory = []*domain.Entity{dagger}

	sword := newEquipment("sword", enums.SlotRightHand, 3, 0)
	shield := newEquipment("shield", enums.SlotLeftHand, 0, 1)
	es := domain.Entities{newPlayer(1, 1), sword, shield}

	es, msg, err := TryPickup(g, es, 1)
	if err != nil || !sword.Equipment.Equipped || !strings.Contains(msg, "Equipped sword") {
		t.Errorf("sword: equipped=%v msg=%q err=%v", sword.Equipment.Equipped, msg, err)
	}

	_, _, err = TryPickup(g, es, 1)
	if err != nil || shield.Equipment.Equipped {
		t.Errorf("shield must not replace the equipped dagger (err=%v)", err)
	}
}

func TestTryDrop(t *testing.T) {
	g := newTestGame(10, 10)
	player := newPlayer(4, 4)
	dagger := newEquipment("dagger", enums.SlotLeftHand, 2, 0)
	dagger.Equipment.Equipped = true
	g.Inventory = []*domain.Entity{dagger}
	es := domain.Entities{player}

	es, msg, err := TryDrop(g, es, 0)
	if err != nil {
		t.Fatal(err)
	}
	if dagger.Equipment.Equipped {
		t.Error("dropped item stays equipped")
	}
	if !strings.HasPrefix(msg, "Dequipped dagger") || !strings.HasSuffix(msg, "You dropped a dagger.") {
		t.Errorf("msg = %q", msg)
	}
	if len(es) != 2 || es[1].Pos != player.Pos || len(g.Inventory) != 0 {
		t.Error("dagger was not placed under the player")
	}

	if _, _, err := TryDrop(g, es, 0); err == nil {
		t.Error("dropping from an empty inventory should fail")
	}
}
