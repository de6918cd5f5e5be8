package seeders

import "climate-repair/internal/entities"

var statuses = []entities.RequestStatus{
	{ID: entities.StatusNew, Name: "Новая заявка", Color: "#007bff"},
	{ID: entities.StatusInProgress, Name: "В процессе ремонта", Color: "#ffc107"},
	{ID: entities.StatusAwaitingParts, Name: "Ожидание запчастей", Color: "#6c757d"},
	{ID: entities.StatusReadyForPick, Name: "Готова к выдаче", Color: "#17a2b8"},
	{ID: entities.StatusCompleted, Name: "Завершена", Color: "#28a745"},
}

var equipmentTypes = []entities.EquipmentType{
	{ID: 1, Name: "Кондиционер"},
	{ID: 2, Name: "Увлажнитель воздуха"},
	{ID: 3, Name: "Сушилка для рук"},
}

var equipmentModels = []entities.EquipmentModel{
	{Name: "TCL TAC-12CHSA/TPG-W белый", TypeID: 1, Manufacturer: "TCL"},
	{Name: "Electrolux EACS/I-09HAT/N3_21Y белый", TypeID: 1, Manufacturer: "Electrolux"},
	{Name: "Xiaomi Smart Humidifier 2", TypeID: 2, Manufacturer: "Xiaomi"},
	{Name: "Polaris PUH 2300 WIFI IQ Home", TypeID: 2, Manufacturer: "Polaris"},
	{Name: "Ballu BAHD-1250", TypeID: 3, Manufacturer: "Ballu"},
}

type seedUser struct {
	FullName string
	Phone    string
	Login    string
	Password string
	Role     string
}

var testUsers = []seedUser{
	{"Широков Василий Матвеевич", "89215567841", "login1", "pass1", "Менеджер"},
	{"Кудрявцева Ева Ивановна", "89215567842", "login2", "pass2", "Специалист"},
	{"Гончарова Ульяна Ярославовна", "89215567843", "login3", "pass3", "Специалист"},
	{"Гусева Виктория Данииловна", "89215567844", "login4", "pass4", "Оператор"},
	{"Баранов Артём Юрьевич", "89215567845", "login5", "pass5", "Оператор"},
	{"Менеджер по качеству", "89215567846", "login6", "pass6", "Менеджер по качеству"},
	{"Петров Никита Артёмович", "89215567847", "login7", "pass7", "Заказчик"},
	{"Ковалева Софья Владимировна", "89215567848", "login8", "pass8", "Заказчик"},
}
