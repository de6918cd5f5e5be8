package entities

type EquipmentType struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type EquipmentModel struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	TypeID       uint64 `json:"type_id"`
	Manufacturer string `json:"manufacturer"`
}
