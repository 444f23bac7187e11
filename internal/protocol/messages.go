// Package protocol defines the message vocabulary exchanged with the game
// client: message codes, event tuples and command parsing.
//
// Every message is a JSON array whose first element is the message code.
// A batch is an array of messages.
package protocol

import "strconv"

// MessageType is the first element of every message.
type MessageType int

const (
	MsgHello      MessageType = 0
	MsgWelcome    MessageType = 1
	MsgSpawn      MessageType = 2
	MsgDespawn    MessageType = 3
	MsgMove       MessageType = 4
	MsgLootMove   MessageType = 5
	MsgAggro      MessageType = 6
	MsgAttack     MessageType = 7
	MsgHit        MessageType = 8
	MsgHurt       MessageType = 9
	MsgHealth     MessageType = 10
	MsgChat       MessageType = 11
	MsgLoot       MessageType = 12
	MsgEquip      MessageType = 13
	MsgDrop       MessageType = 14
	MsgTeleport   MessageType = 15
	MsgDamage     MessageType = 16
	MsgPopulation MessageType = 17
	MsgKill       MessageType = 18
	MsgList       MessageType = 19
	MsgWho        MessageType = 20
	MsgZone       MessageType = 21
	MsgDestroy    MessageType = 22
	MsgHP         MessageType = 23
	MsgBlink      MessageType = 24
	MsgOpen       MessageType = 25
	MsgCheck      MessageType = 26
)

var messageNames = [...]string{
	"HELLO", "WELCOME", "SPAWN", "DESPAWN", "MOVE", "LOOTMOVE", "AGGRO",
	"ATTACK", "HIT", "HURT", "HEALTH", "CHAT", "LOOT", "EQUIP", "DROP",
	"TELEPORT", "DAMAGE", "POPULATION", "KILL", "LIST", "WHO", "ZONE",
	"DESTROY", "HP", "BLINK", "OPEN", "CHECK",
}

// String returns the message name.
func (m MessageType) String() string {
	if m >= 0 && int(m) < len(messageNames) {
		return messageNames[m]
	}
	return "UNKNOWN(" + strconv.Itoa(int(m)) + ")"
}
