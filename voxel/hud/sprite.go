package hud

import "encoding/binary"

// Sprite is one 8-byte object attribute record: four little-endian 16-bit
// words.
//
//	attr0: y:8 affineMode:2 objMode:2 mosaic:1 bpp:1 shape:2
//	attr1: x:9 matrixNum:5 size:2
//	attr2: tileNum:10 priority:2 paletteNum:4
//	attr3: affineParam
type Sprite [8]byte

// Affine modes.
const (
	AffineOff      = 0
	AffineOn       = 1
	AffineDisabled = 2 // sprite hidden
	AffineDouble   = 3
)

func (s *Sprite) word(i int) uint16 { return binary.LittleEndian.Uint16(s[i*2:]) }

func (s *Sprite) setWord(i int, v uint16) { binary.LittleEndian.PutUint16(s[i*2:], v) }

func (s *Sprite) field(i int, shift, bits uint) uint16 {
	return (s.word(i) >> shift) & (1<<bits - 1)
}

func (s *Sprite) setField(i int, shift, bits uint, v uint16) {
	mask := uint16(1<<bits-1) << shift
	s.setWord(i, s.word(i)&^mask|(v<<shift)&mask)
}

func (s *Sprite) Y() uint8              { return uint8(s.field(0, 0, 8)) }
func (s *Sprite) SetY(v uint8)          { s.setField(0, 0, 8, uint16(v)) }
func (s *Sprite) AffineMode() uint8     { return uint8(s.field(0, 8, 2)) }
func (s *Sprite) SetAffineMode(v uint8) { s.setField(0, 8, 2, uint16(v)) }
func (s *Sprite) ObjMode() uint8        { return uint8(s.field(0, 10, 2)) }
func (s *Sprite) SetObjMode(v uint8)    { s.setField(0, 10, 2, uint16(v)) }
func (s *Sprite) Mosaic() bool          { return s.field(0, 12, 1) != 0 }
func (s *Sprite) BPP8() bool            { return s.field(0, 13, 1) != 0 }
func (s *Sprite) Shape() uint8          { return uint8(s.field(0, 14, 2)) }

func (s *Sprite) X() uint16             { return s.field(1, 0, 9) }
func (s *Sprite) SetX(v uint16)         { s.setField(1, 0, 9, v) }
func (s *Sprite) MatrixNum() uint8      { return uint8(s.field(1, 9, 5)) }
func (s *Sprite) Size() uint8           { return uint8(s.field(1, 14, 2)) }
func (s *Sprite) TileNum() uint16       { return s.field(2, 0, 10) }
func (s *Sprite) SetTileNum(v uint16)   { s.setField(2, 0, 10, v) }
func (s *Sprite) Priority() uint8       { return uint8(s.field(2, 10, 2)) }
func (s *Sprite) SetPriority(v uint8)   { s.setField(2, 10, 2, uint16(v)) }
func (s *Sprite) PaletteNum() uint8     { return uint8(s.field(2, 12, 4)) }
func (s *Sprite) SetPaletteNum(v uint8) { s.setField(2, 12, 4, uint16(v)) }
func (s *Sprite) AffineParam() uint16   { return s.word(3) }

// Hidden reports whether the sprite is disabled.
func (s *Sprite) Hidden() bool { return s.AffineMode() == AffineDisabled }
