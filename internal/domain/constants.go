package domain

// Параметры восприятия
const (
	VisionRadius = 8
)

// Цвета и символ трупа (клиентская палитра)
const (
	CorpseChar  byte   = '%'
	CorpseColor uint32 = 0xBF0000
)

// Надбавка к стоимости клетки, занятой другим блокирующим актором.
// Меньше - враги толпятся друг за другом, больше - обходят дальними
// путями.
const OccupiedTileCost = 10
