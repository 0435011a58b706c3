package model

// ── 员工档案枚举 ──────────────────────────────────────────────
//
// 所有枚举均以闭合字符串常量建模，持久化存储值，展示文案由 Label 映射给出。
// 展示文案面向智利客户，保留西语原文。

// EmployeeStatus 员工状态
type EmployeeStatus string

const (
	StatusActive     EmployeeStatus = "active"
	StatusInactive   EmployeeStatus = "inactive"
	StatusOnVacation EmployeeStatus = "on_vacation"
	StatusOnLeave    EmployeeStatus = "on_leave"
	StatusProbation  EmployeeStatus = "probation"
)

var employeeStatusLabels = map[EmployeeStatus]string{
	StatusActive:     "Activo",
	StatusInactive:   "Inactivo",
	StatusOnVacation: "En Vacaciones",
	StatusOnLeave:    "En Licencia",
	StatusProbation:  "Período de Prueba",
}

// Valid 判断是否为合法枚举值
func (s EmployeeStatus) Valid() bool { _, ok := employeeStatusLabels[s]; return ok }

// Label 展示文案
func (s EmployeeStatus) Label() string { return employeeStatusLabels[s] }

// EmployeeStatuses 全部状态值（按展示顺序）
func EmployeeStatuses() []EmployeeStatus {
	return []EmployeeStatus{StatusActive, StatusInactive, StatusOnVacation, StatusOnLeave, StatusProbation}
}

// Location 工作城市
type Location string

const (
	LocationSantiago    Location = "santiago"
	LocationValparaiso  Location = "valparaiso"
	LocationConcepcion  Location = "concepcion"
	LocationAntofagasta Location = "antofagasta"
	LocationTemuco      Location = "temuco"
	LocationIquique     Location = "iquique"
	LocationRancagua    Location = "rancagua"
	LocationTalca       Location = "talca"
	LocationOsorno      Location = "osorno"
	LocationPuertoMontt Location = "puerto_montt"
	LocationPuntaArenas Location = "punta_arenas"
	LocationArica       Location = "arica"
)

var locationLabels = map[Location]string{
	LocationSantiago:    "Santiago",
	LocationValparaiso:  "Valparaíso",
	LocationConcepcion:  "Concepción",
	LocationAntofagasta: "Antofagasta",
	LocationTemuco:      "Temuco",
	LocationIquique:     "Iquique",
	LocationRancagua:    "Rancagua",
	LocationTalca:       "Talca",
	LocationOsorno:      "Osorno",
	LocationPuertoMontt: "Puerto Montt",
	LocationPuntaArenas: "Punta Arenas",
	LocationArica:       "Arica",
}

func (l Location) Valid() bool    { _, ok := locationLabels[l]; return ok }
func (l Location) Label() string  { return locationLabels[l] }

// Department 部门
type Department string

const (
	DeptAdministration Department = "administration"
	DeptSales          Department = "sales"
	DeptOperations     Department = "operations"
	DeptSupport        Department = "support"
	DeptMarketing      Department = "marketing"
	DeptHR             Department = "hr"
	DeptFinance        Department = "finance"
	DeptLogistics      Department = "logistics"
	DeptIT             Department = "it"
	DeptQA             Department = "qa"
)

var departmentLabels = map[Department]string{
	DeptAdministration: "Administración",
	DeptSales:          "Ventas",
	DeptOperations:     "Operaciones",
	DeptSupport:        "Soporte Técnico",
	DeptMarketing:      "Marketing",
	DeptHR:             "Recursos Humanos",
	DeptFinance:        "Finanzas",
	DeptLogistics:      "Logística",
	DeptIT:             "Tecnologías de la Información",
	DeptQA:             "Aseguramiento de Calidad",
}

func (d Department) Valid() bool   { _, ok := departmentLabels[d]; return ok }
func (d Department) Label() string { return departmentLabels[d] }

// HealthPlan 医保机构（FONASA / Isapre）
type HealthPlan string

const (
	HealthFonasa           HealthPlan = "fonasa"
	HealthIsapreBanmedica  HealthPlan = "isapre_banmedica"
	HealthIsapreColmena    HealthPlan = "isapre_colmena"
	HealthIsapreConsalud   HealthPlan = "isapre_consalud"
	HealthIsapreCruzBlanca HealthPlan = "isapre_cruz_blanca"
	HealthIsapreVidaTres   HealthPlan = "isapre_vida_tres"
)

var healthPlanLabels = map[HealthPlan]string{
	HealthFonasa:           "FONASA",
	HealthIsapreBanmedica:  "Isapre Banmédica",
	HealthIsapreColmena:    "Isapre Colmena",
	HealthIsapreConsalud:   "Isapre Consalud",
	HealthIsapreCruzBlanca: "Isapre Cruz Blanca",
	HealthIsapreVidaTres:   "Isapre Vida Tres",
}

func (h HealthPlan) Valid() bool   { _, ok := healthPlanLabels[h]; return ok }
func (h HealthPlan) Label() string { return healthPlanLabels[h] }

// PensionFund 养老金机构（AFP）
type PensionFund string

const (
	AFPCapital   PensionFund = "afp_capital"
	AFPProvida   PensionFund = "afp_provida"
	AFPHabitat   PensionFund = "afp_habitat"
	AFPPlanVital PensionFund = "afp_planvital"
	AFPCuprum    PensionFund = "afp_cuprum"
	AFPModelo    PensionFund = "afp_modelo"
	AFPUno       PensionFund = "afp_uno"
)

var pensionFundLabels = map[PensionFund]string{
	AFPCapital:   "AFP Capital",
	AFPProvida:   "AFP Provida",
	AFPHabitat:   "AFP Habitat",
	AFPPlanVital: "AFP PlanVital",
	AFPCuprum:    "AFP Cuprum",
	AFPModelo:    "AFP Modelo",
	AFPUno:       "AFP Uno",
}

func (p PensionFund) Valid() bool   { _, ok := pensionFundLabels[p]; return ok }
func (p PensionFund) Label() string { return pensionFundLabels[p] }

// DocumentType 员工文档类型
type DocumentType string

const (
	DocCV                  DocumentType = "cv"
	DocContract            DocumentType = "contract"
	DocAnnex               DocumentType = "annex"
	DocVacationCertificate DocumentType = "vacation_certificate"
	DocPayslip             DocumentType = "payslip"
	DocWarningLetter       DocumentType = "warning_letter"
	DocReport              DocumentType = "report"
	DocSeverance           DocumentType = "severance"
	DocIdentification      DocumentType = "identification"
	DocOther               DocumentType = "other"
)

var documentTypeLabels = map[DocumentType]string{
	DocCV:                  "Curriculum Vitae",
	DocContract:            "Contrato",
	DocAnnex:               "Anexos",
	DocVacationCertificate: "Certificado de Vacaciones",
	DocPayslip:             "Liquidación de Sueldo",
	DocWarningLetter:       "Carta de Amonestación",
	DocReport:              "Informes",
	DocSeverance:           "Finiquito",
	DocIdentification:      "Identificación",
	DocOther:               "Otro",
}

func (d DocumentType) Valid() bool   { _, ok := documentTypeLabels[d]; return ok }
func (d DocumentType) Label() string { return documentTypeLabels[d] }
