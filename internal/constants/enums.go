package constants

// EnumSet is a closed set of allowed values. Anything outside it is rejected, never coerced.
type EnumSet[T ~string] []T

func (s EnumSet[T]) Contains(v T) bool {
	for _, candidate := range s {
		if candidate == v {
			return true
		}
	}
	return false
}

func (s EnumSet[T]) Strings() []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = string(v)
	}
	return out
}

// District is one of the four pilot operating regions.
type District string

const (
	DistrictKasese     District = "Kasese"
	DistrictKabarole   District = "Kabarole"
	DistrictBunyangabu District = "Bunyangabu"
	DistrictKyenjojo   District = "Kyenjojo"
)

var Districts = EnumSet[District]{DistrictKasese, DistrictKabarole, DistrictBunyangabu, DistrictKyenjojo}

type DareModel string

const (
	DareCollaborative DareModel = "Collaborative"
	DareMakerSpace    DareModel = "MakerSpace"
	DareMadamAnchor   DareModel = "Madam Anchor"
)

var DareModels = EnumSet[DareModel]{DareCollaborative, DareMakerSpace, DareMadamAnchor}

type EnterpriseType string

const (
	EnterpriseSoleProprietorship EnterpriseType = "Sole Proprietorship"
	EnterprisePartnership        EnterpriseType = "Partnership"
	EnterpriseCooperative        EnterpriseType = "Cooperative"
	EnterpriseLimitedCompany     EnterpriseType = "Limited Company"
	EnterpriseInformalGroup      EnterpriseType = "Informal Group"
)

var EnterpriseTypes = EnumSet[EnterpriseType]{
	EnterpriseSoleProprietorship, EnterprisePartnership, EnterpriseCooperative,
	EnterpriseLimitedCompany, EnterpriseInformalGroup,
}

type EnterpriseSize string

const (
	SizeMicro  EnterpriseSize = "Micro"
	SizeSmall  EnterpriseSize = "Small"
	SizeMedium EnterpriseSize = "Medium"
	SizeLarge  EnterpriseSize = "Large"
)

var EnterpriseSizes = EnumSet[EnterpriseSize]{SizeMicro, SizeSmall, SizeMedium, SizeLarge}

type Sector string

const (
	SectorAgriculture   Sector = "Agriculture"
	SectorManufacturing Sector = "Manufacturing"
	SectorServices      Sector = "Services"
	SectorRetail        Sector = "Retail"
	SectorTechnology    Sector = "Technology"
	SectorConstruction  Sector = "Construction"
	SectorCreativeArts  Sector = "Creative Arts"
	SectorHospitality   Sector = "Hospitality"
	SectorOther         Sector = "Other"
)

var Sectors = EnumSet[Sector]{
	SectorAgriculture, SectorManufacturing, SectorServices, SectorRetail, SectorTechnology,
	SectorConstruction, SectorCreativeArts, SectorHospitality, SectorOther,
}

type RegistrationStatus string

const (
	RegistrationRegistered   RegistrationStatus = "Registered"
	RegistrationUnregistered RegistrationStatus = "Unregistered"
	RegistrationInProgress   RegistrationStatus = "In Progress"
)

var RegistrationStatuses = EnumSet[RegistrationStatus]{RegistrationRegistered, RegistrationUnregistered, RegistrationInProgress}

type TrackingPeriod string

const (
	PeriodWeekly    TrackingPeriod = "weekly"
	PeriodBiweekly  TrackingPeriod = "biweekly"
	PeriodMonthly   TrackingPeriod = "monthly"
	PeriodQuarterly TrackingPeriod = "quarterly"
	PeriodBiannual  TrackingPeriod = "biannual"
	PeriodAnnual    TrackingPeriod = "annual"
)

var TrackingPeriods = EnumSet[TrackingPeriod]{PeriodWeekly, PeriodBiweekly, PeriodMonthly, PeriodQuarterly, PeriodBiannual, PeriodAnnual}

// MonthlyFactor converts one period's amount into a monthly equivalent.
func (p TrackingPeriod) MonthlyFactor() float64 {
	switch p {
	case PeriodWeekly:
		return 4
	case PeriodBiweekly:
		return 2
	case PeriodQuarterly:
		return 1.0 / 3
	case PeriodBiannual:
		return 1.0 / 6
	case PeriodAnnual:
		return 1.0 / 12
	default:
		return 1
	}
}

type FeasibilityStatus string

const (
	FeasibilityDraft      FeasibilityStatus = "Draft"
	FeasibilityInProgress FeasibilityStatus = "In Progress"
	FeasibilityCompleted  FeasibilityStatus = "Completed"
	FeasibilityReviewed   FeasibilityStatus = "Reviewed"
)

var FeasibilityStatuses = EnumSet[FeasibilityStatus]{FeasibilityDraft, FeasibilityInProgress, FeasibilityCompleted, FeasibilityReviewed}

type ResourceStatus string

const (
	ResourceAvailable   ResourceStatus = "Available"
	ResourceInUse       ResourceStatus = "In Use"
	ResourceMaintenance ResourceStatus = "Maintenance"
	ResourceOutOfStock  ResourceStatus = "Out of Stock"
)

var ResourceStatuses = EnumSet[ResourceStatus]{ResourceAvailable, ResourceInUse, ResourceMaintenance, ResourceOutOfStock}

type CostType string

const (
	CostPurchase    CostType = "purchase"
	CostMaintenance CostType = "maintenance"
	CostRepair      CostType = "repair"
	CostUpgrade     CostType = "upgrade"
	CostOther       CostType = "other"
)

var CostTypes = EnumSet[CostType]{CostPurchase, CostMaintenance, CostRepair, CostUpgrade, CostOther}

type RelationshipRole string

const (
	RelationshipOwner  RelationshipRole = "Owner"
	RelationshipMember RelationshipRole = "Member"
)

var RelationshipRoles = EnumSet[RelationshipRole]{RelationshipOwner, RelationshipMember}

type MessageSender string

const (
	SenderMentor   MessageSender = "mentor"
	SenderBusiness MessageSender = "business"
)

var MessageSenders = EnumSet[MessageSender]{SenderMentor, SenderBusiness}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

var Genders = EnumSet[Gender]{GenderMale, GenderFemale}

// OwnerPolicy chooses what happens when a business already holds MaxActiveOwners owners.
type OwnerPolicy string

const (
	OwnerPolicyReject        OwnerPolicy = "reject"
	OwnerPolicyReplaceOldest OwnerPolicy = "replace_oldest"
)

var OwnerPolicies = EnumSet[OwnerPolicy]{OwnerPolicyReject, OwnerPolicyReplaceOldest}
