package ast

import (
	"ferrite/internal/source"
)

type ItemKind uint8

const (
	ItemFn ItemKind = iota + 1
	ItemStruct
	ItemEnum
	ItemMod
	ItemUse
)

func (k ItemKind) String() string {
	switch k {
	case ItemFn:
		return "Fn"
	case ItemStruct:
		return "Struct"
	case ItemEnum:
		return "Enum"
	case ItemMod:
		return "Mod"
	case ItemUse:
		return "Use"
	default:
		return "Item(?)"
	}
}

// Item is a top-level declaration. Span runs from the visibility (when
// present) to the end of the declaration.
type Item struct {
	Kind    ItemKind
	Span    source.Span
	Vis     Visibility
	Payload PayloadID
}

// FnParam is `name: Type`.
type FnParam struct {
	Span source.Span
	Name Symbol
	Type TypeID
}

// FnItem is a function. Result is never NoTypeID: an omitted return type
// becomes the empty tuple spanning the body's `{`.
type FnItem struct {
	Name   Symbol
	Params []FnParam
	Result TypeID
	Body   BlockID
}

// StructField spans from its visibility (or name) to its type.
type StructField struct {
	Span source.Span
	Vis  Visibility
	Name Symbol
	Type TypeID
}

type StructItem struct {
	Name   Symbol
	Fields []StructField
}

// EnumVariant has zero or more positional field types.
type EnumVariant struct {
	Span   source.Span
	Name   Symbol
	Fields []TypeID
}

type EnumItem struct {
	Name     Symbol
	Variants []EnumVariant
}

// ModItem is `mod name;`.
type ModItem struct {
	Name Symbol
}

// UseItem is `use module::item;`; Module holds every segment but the last.
type UseItem struct {
	Module Path
	Item   Symbol
}

// Items manages allocation of top-level items.
type Items struct {
	Arena   *Arena[Item]
	Fns     *Arena[FnItem]
	Structs *Arena[StructItem]
	Enums   *Arena[EnumItem]
	Mods    *Arena[ModItem]
	Uses    *Arena[UseItem]
}

// NewItems creates per-kind item arenas; capHint 0 means a small default.
func NewItems(capHint uint) *Items {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Items{
		Arena:   NewArena[Item](capHint),
		Fns:     NewArena[FnItem](capHint),
		Structs: NewArena[StructItem](capHint / 4),
		Enums:   NewArena[EnumItem](capHint / 4),
		Mods:    NewArena[ModItem](capHint / 8),
		Uses:    NewArena[UseItem](capHint / 4),
	}
}

func (i *Items) new(kind ItemKind, span source.Span, vis Visibility, payload uint32) ItemID {
	return ItemID(i.Arena.Allocate(Item{Kind: kind, Span: span, Vis: vis, Payload: PayloadID(payload)}))
}

// Get returns the item with the given ID.
func (i *Items) Get(id ItemID) *Item {
	return i.Arena.Get(uint32(id))
}

func (i *Items) NewFn(span source.Span, vis Visibility, data FnItem) ItemID {
	return i.new(ItemFn, span, vis, i.Fns.Allocate(data))
}

func (i *Items) Fn(id ItemID) (*FnItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemFn {
		return nil, false
	}
	return i.Fns.Get(uint32(item.Payload)), true
}

func (i *Items) NewStruct(span source.Span, vis Visibility, data StructItem) ItemID {
	return i.new(ItemStruct, span, vis, i.Structs.Allocate(data))
}

func (i *Items) Struct(id ItemID) (*StructItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemStruct {
		return nil, false
	}
	return i.Structs.Get(uint32(item.Payload)), true
}

func (i *Items) NewEnum(span source.Span, vis Visibility, data EnumItem) ItemID {
	return i.new(ItemEnum, span, vis, i.Enums.Allocate(data))
}

func (i *Items) Enum(id ItemID) (*EnumItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemEnum {
		return nil, false
	}
	return i.Enums.Get(uint32(item.Payload)), true
}

func (i *Items) NewMod(span source.Span, vis Visibility, data ModItem) ItemID {
	return i.new(ItemMod, span, vis, i.Mods.Allocate(data))
}

func (i *Items) Mod(id ItemID) (*ModItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemMod {
		return nil, false
	}
	return i.Mods.Get(uint32(item.Payload)), true
}

func (i *Items) NewUse(span source.Span, vis Visibility, data UseItem) ItemID {
	return i.new(ItemUse, span, vis, i.Uses.Allocate(data))
}

func (i *Items) Use(id ItemID) (*UseItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemUse {
		return nil, false
	}
	return i.Uses.Get(uint32(item.Payload)), true
}
