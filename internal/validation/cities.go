package validation

// AnyCity is the listing filter sentinel, it is not a valid vacancy city.
const AnyCity = "Любой"

// FilteredCities is the fixed set of cities a vacancy may be opened in.
// The sentinel goes first so the list can back a filter dropdown as is.
var FilteredCities = []string{
	AnyCity,
	"Москва",
	"Санкт-Петербург",
	"Новосибирск",
	"Екатеринбург",
	"Казань",
	"Нижний Новгород",
	"Челябинск",
	"Самара",
	"Омск",
	"Ростов-на-Дону",
	"Уфа",
	"Красноярск",
	"Воронеж",
	"Пермь",
	"Волгоград",
	"Краснодар",
	"Саратов",
	"Тюмень",
	"Тольятти",
	"Ижевск",
}

var citySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(FilteredCities))
	for _, city := range FilteredCities {
		set[city] = struct{}{}
	}
	return set
}()

// IsKnownCity reports whether city is in the fixed set, sentinel included.
func IsKnownCity(city string) bool {
	_, ok := citySet[city]
	return ok
}
