package domain

// Размеры карты.
const (
	MapWidth  = 80
	MapHeight = 45
)

// Генератор комнат.
const (
	RoomMaxSize = 10
	RoomMinSize = 6
	MaxRooms    = 30
)

// Обзор.
const (
	TorchRadius = 10
	LightWalls  = true
)

// Эффекты предметов.
const (
	HealAmount       = 40
	LightningDamage  = 40
	LightningRange   = 5
	ConfuseRange     = 8
	ConfuseNumTurns  = 10
	FireballRadius   = 3
	FireballDamage   = 25
	MaxInventorySize = 26
)

// Прокачка.
const (
	LevelUpBase   = 200
	LevelUpFactor = 150
)
