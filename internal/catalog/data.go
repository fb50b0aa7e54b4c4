package catalog

import (
	"time"

	"github.com/connect237/busconnect/internal/domain"
)

var cameroonCities = []domain.City{
	// Centre
	{Name: "Yaoundé", Region: "Centre", Lat: 3.8667, Lng: 11.5167, Major: true, HasAirport: true},
	{Name: "Mbalmayo", Region: "Centre", Lat: 3.5167, Lng: 11.5000},
	{Name: "Akonolinga", Region: "Centre", Lat: 3.7667, Lng: 12.2500},
	{Name: "Bafia", Region: "Centre", Lat: 4.7500, Lng: 11.2333},
	{Name: "Mfou", Region: "Centre", Lat: 3.7167, Lng: 11.6833},
	{Name: "Obala", Region: "Centre", Lat: 4.1667, Lng: 11.5333},
	{Name: "Ntui", Region: "Centre", Lat: 4.8167, Lng: 11.6333},
	{Name: "Monatélé", Region: "Centre", Lat: 3.7000, Lng: 11.3667},

	// Littoral
	{Name: "Douala", Region: "Littoral", Lat: 4.0611, Lng: 9.7067, Major: true, HasAirport: true},
	{Name: "Edéa", Region: "Littoral", Lat: 3.7833, Lng: 10.1333},
	{Name: "Nkongsamba", Region: "Littoral", Lat: 4.9500, Lng: 9.9333, Major: true},
	{Name: "Loum", Region: "Littoral", Lat: 4.7167, Lng: 9.7333},
	{Name: "Mbanga", Region: "Littoral", Lat: 4.4833, Lng: 9.5667},
	{Name: "Manjo", Region: "Littoral", Lat: 4.8167, Lng: 9.8333},
	{Name: "Dizangué", Region: "Littoral", Lat: 3.6833, Lng: 10.6167},

	// Ouest
	{Name: "Bafoussam", Region: "Ouest", Lat: 5.4667, Lng: 10.4167, Major: true, HasAirport: true},
	{Name: "Dschang", Region: "Ouest", Lat: 5.4500, Lng: 10.0500, Major: true},
	{Name: "Mbouda", Region: "Ouest", Lat: 5.6167, Lng: 10.2500},
	{Name: "Bandjoun", Region: "Ouest", Lat: 5.3667, Lng: 10.4000},
	{Name: "Bangangté", Region: "Ouest", Lat: 5.1500, Lng: 10.5167},
	{Name: "Foumban", Region: "Ouest", Lat: 5.7167, Lng: 10.9000, Major: true},
	{Name: "Kékem", Region: "Ouest", Lat: 5.3500, Lng: 10.0833},
	{Name: "Bafang", Region: "Ouest", Lat: 5.1667, Lng: 10.1833},

	// Nord-Ouest
	{Name: "Bamenda", Region: "Nord-Ouest", Lat: 5.9667, Lng: 10.1667, Major: true, HasAirport: true},
	{Name: "Kumbo", Region: "Nord-Ouest", Lat: 6.2000, Lng: 10.6833},
	{Name: "Wum", Region: "Nord-Ouest", Lat: 6.3833, Lng: 10.0667},
	{Name: "Ndop", Region: "Nord-Ouest", Lat: 6.0167, Lng: 10.4500},
	{Name: "Mbengwi", Region: "Nord-Ouest", Lat: 6.1667, Lng: 9.9333},
	{Name: "Fundong", Region: "Nord-Ouest", Lat: 6.2333, Lng: 10.2833},

	// Sud-Ouest
	{Name: "Buéa", Region: "Sud-Ouest", Lat: 4.1500, Lng: 9.2833, Major: true},
	{Name: "Limbe", Region: "Sud-Ouest", Lat: 4.0167, Lng: 9.2000, Major: true},
	{Name: "Kumba", Region: "Sud-Ouest", Lat: 4.6333, Lng: 9.4500, Major: true},
	{Name: "Tiko", Region: "Sud-Ouest", Lat: 4.0667, Lng: 9.3667, HasAirport: true},
	{Name: "Mamfé", Region: "Sud-Ouest", Lat: 5.7667, Lng: 9.3000},
	{Name: "Tombel", Region: "Sud-Ouest", Lat: 4.6167, Lng: 9.6000},
	{Name: "Bangem", Region: "Sud-Ouest", Lat: 4.8167, Lng: 9.7667},

	// Sud
	{Name: "Ebolowa", Region: "Sud", Lat: 2.9167, Lng: 11.1500, Major: true},
	{Name: "Kribi", Region: "Sud", Lat: 2.9333, Lng: 9.9167, Major: true},
	{Name: "Sangmélima", Region: "Sud", Lat: 2.9167, Lng: 11.9833},
	{Name: "Ambam", Region: "Sud", Lat: 2.3833, Lng: 11.2667},
	{Name: "Campo", Region: "Sud", Lat: 2.3667, Lng: 9.8167},
	{Name: "Lolodorf", Region: "Sud", Lat: 3.2333, Lng: 10.7333},

	// Est
	{Name: "Bertoua", Region: "Est", Lat: 4.5833, Lng: 13.6833, Major: true, HasAirport: true},
	{Name: "Batouri", Region: "Est", Lat: 4.4333, Lng: 14.3667},
	{Name: "Yokadouma", Region: "Est", Lat: 3.5167, Lng: 15.0833},
	{Name: "Abong-Mbang", Region: "Est", Lat: 3.9833, Lng: 13.1833},
	{Name: "Doumé", Region: "Est", Lat: 4.2333, Lng: 13.1500},

	// Adamaoua
	{Name: "Ngaoundéré", Region: "Adamaoua", Lat: 7.3167, Lng: 13.5833, Major: true, HasAirport: true},
	{Name: "Meiganga", Region: "Adamaoua", Lat: 6.5167, Lng: 14.2833},
	{Name: "Tibati", Region: "Adamaoua", Lat: 6.4667, Lng: 12.6167},
	{Name: "Banyo", Region: "Adamaoua", Lat: 6.7500, Lng: 11.8167},
	{Name: "Tignère", Region: "Adamaoua", Lat: 7.3667, Lng: 12.6500},

	// Nord
	{Name: "Garoua", Region: "Nord", Lat: 9.3000, Lng: 13.4000, Major: true, HasAirport: true},
	{Name: "Maroua", Region: "Nord", Lat: 10.5833, Lng: 14.3167, Major: true, HasAirport: true},
	{Name: "Guider", Region: "Nord", Lat: 9.9333, Lng: 13.9500},
	{Name: "Mokolo", Region: "Nord", Lat: 10.7333, Lng: 13.8000},
	{Name: "Yagoua", Region: "Nord", Lat: 10.3333, Lng: 15.2333},
	{Name: "Kaélé", Region: "Nord", Lat: 10.1000, Lng: 14.4500},

	// Extrême-Nord
	{Name: "Kousseri", Region: "Extrême-Nord", Lat: 12.0833, Lng: 15.0333},
	{Name: "Mora", Region: "Extrême-Nord", Lat: 11.0500, Lng: 14.1333},
	{Name: "Waza", Region: "Extrême-Nord", Lat: 11.3833, Lng: 14.6333},
	{Name: "Kolofata", Region: "Extrême-Nord", Lat: 10.9667, Lng: 14.3000},
}

var busCompanies = []domain.Company{
	{Name: "Express Union", Rating: 4.5, SafetyRating: 4.7, FleetSize: 150, Specialties: []string{"long_distance", "vip_service"}},
	{Name: "Touristique Express", Rating: 4.3, SafetyRating: 4.5, FleetSize: 120, Specialties: []string{"comfort", "reliability"}},
	{Name: "Central Voyages", Rating: 4.2, SafetyRating: 4.4, FleetSize: 100, Specialties: []string{"affordable", "frequent"}},
	{Name: "Binam Voyages", Rating: 4.4, SafetyRating: 4.6, FleetSize: 80, Specialties: []string{"premium", "punctuality"}},
	{Name: "Vatican Transport", Rating: 4.1, SafetyRating: 4.3, FleetSize: 90, Specialties: []string{"economy", "regional"}},
	{Name: "Transcam Transport", Rating: 4.3, SafetyRating: 4.5, FleetSize: 110, Specialties: []string{"intercity", "comfort"}},
	{Name: "Guaranti Express", Rating: 4.6, SafetyRating: 4.8, FleetSize: 75, Specialties: []string{"luxury", "safety"}},
	{Name: "Musango Transport", Rating: 4.0, SafetyRating: 4.2, FleetSize: 95, Specialties: []string{"budget", "coverage"}},
}

var serviceClasses = []domain.ServiceClass{
	{
		Name: "economy", DisplayName: "Économie", Multiplier: 1.0,
		Amenities:   []string{"Siège standard", "Bagages inclus"},
		Description: "Service de base confortable et abordable", MaxPassengers: 45,
	},
	{
		Name: "comfort", DisplayName: "Confort", Multiplier: 1.3,
		Amenities:   []string{"Sièges inclinables", "WiFi", "Collations", "Prises USB"},
		Description: "Plus d'espace et de commodités", MaxPassengers: 35,
	},
	{
		Name: "premium", DisplayName: "Premium", Multiplier: 1.6,
		Amenities:   []string{"Sièges cuir", "Repas inclus", "WiFi premium", "Divertissement", "Service personnalisé"},
		Description: "Expérience de voyage de luxe", MaxPassengers: 28,
	},
	{
		Name: "vip", DisplayName: "VIP", Multiplier: 2.0,
		Amenities:   []string{"Cabines privées", "Service concierge", "Repas gastronomique", "WiFi haut débit", "Chauffeur dédié"},
		Description: "Service exclusif de première classe", MaxPassengers: 16,
	},
	{
		Name: "express", DisplayName: "Express", Multiplier: 1.4,
		Amenities:   []string{"Trajet direct", "WiFi", "Collations", "Arrivée garantie"},
		Description: "Trajet rapide sans arrêts intermédiaires", MaxPassengers: 40,
	},
}

func endOfDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 23, 59, 59, 0, time.UTC)
}

var promoCodes = []domain.PromoCode{
	{Code: "BIENVENUE25", DiscountPercent: 25, ValidUntil: endOfDay(2025, 12, 31), Description: "25% de réduction pour les nouveaux clients", UsageLimit: 1, MinAmount: 5000},
	{Code: "WEEKEND15", DiscountPercent: 15, ValidUntil: endOfDay(2025, 12, 31), Description: "15% de réduction pour les voyages du weekend", UsageLimit: 5, MinAmount: 3000},
	{Code: "ETUDIANT20", DiscountPercent: 20, ValidUntil: endOfDay(2025, 12, 31), Description: "20% de réduction pour les étudiants", UsageLimit: 10, MinAmount: 2000},
	{Code: "FIDELITE30", DiscountPercent: 30, ValidUntil: endOfDay(2025, 12, 31), Description: "30% de réduction pour clients fidèles", UsageLimit: 3, MinAmount: 10000},
	{Code: "FAMILLE10", DiscountPercent: 10, ValidUntil: endOfDay(2025, 12, 31), Description: "10% de réduction pour les familles (3+ personnes)", UsageLimit: 20, MinAmount: 15000},
	{Code: "PREMIUM50", DiscountAmount: 5000, ValidUntil: endOfDay(2025, 12, 31), Description: "5000 FCFA de réduction sur les classes Premium", UsageLimit: 1, MinAmount: 20000, ApplicableClasses: []string{"premium", "vip"}},
	{Code: "NOEL2024", DiscountPercent: 40, ValidUntil: endOfDay(2025, 1, 31), Description: "Offre spéciale Nouvel An", UsageLimit: 1, MinAmount: 8000},
}

var baggageOptions = []domain.BaggageOption{
	{Type: "carry_on", Name: "Bagage à main", Description: "8kg max, 42x32x25cm", Price: 0, Included: true},
	{Type: "checked", Name: "Bagage soute", Description: "25kg max, 80x60x40cm", Price: 0, Included: true, InsuranceAvailable: true, InsurancePrice: 1000},
	{Type: "extra", Name: "Bagage supplémentaire", Description: "25kg max, dimensions standard", Price: 3000, InsuranceAvailable: true, InsurancePrice: 1500},
	{Type: "bike", Name: "Transport vélo", Description: "Vélo standard, bien emballé", Price: 4000, InsuranceAvailable: true, InsurancePrice: 2000},
	{Type: "sports", Name: "Équipement sportif", Description: "30kg max, équipement spécialisé", Price: 5000, InsuranceAvailable: true, InsurancePrice: 2500},
	{Type: "fragile", Name: "Objets fragiles", Description: "Emballage spécialisé, manutention délicate", Price: 6000, InsuranceAvailable: true, InsurancePrice: 3000},
	{Type: "documents", Name: "Documents importants", Description: "Transport sécurisé de documents", Price: 1500, InsuranceAvailable: true, InsurancePrice: 500},
}
