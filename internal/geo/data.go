package geo

// Country carries the static attribution data for one malaria-relevant
// country: transmission risk band, major cities, demonyms and continent.
type Country struct {
	Risk      string
	Cities    []string
	Demonyms  []string
	Continent string
}

// Regions maps a broad region name to the terms that imply it when no
// specific country is found.
var Regions = map[string][]string{
	"Africa":        {"africa", "african"},
	"Latin America": {"latin america", "south america", "central america", "latam", "latino"},
	"Caribbean":     {"caribbean", "caribe"},
	"Asia":          {"asia", "asian", "southeast asia", "asiatic"},
	"North America": {"north america", "american"},
	"Europe":        {"europe", "european"},
}

// regionOrder fixes match priority when several region terms appear.
var regionOrder = []string{"Africa", "Latin America", "Caribbean", "Asia", "North America", "Europe"}

// Countries is the attribution dictionary, keyed by canonical country name.
var Countries = map[string]Country{
	"Nigeria": {Risk: "High", Cities: []string{"lagos", "abuja", "kano", "ibadan", "port harcourt", "kaduna"}, Demonyms: []string{"nigerian"}, Continent: "Africa"},
	"Democratic Republic of Congo": {Risk: "High", Cities: []string{"kinshasa", "lubumbashi", "mbuji-mayi", "kisangani"}, Demonyms: []string{"congolese"}, Continent: "Africa"},
	"Ethiopia": {Risk: "High", Cities: []string{"addis ababa", "dire dawa", "mekelle", "gondar", "hawassa"}, Demonyms: []string{"ethiopian"}, Continent: "Africa"},
	"Uganda": {Risk: "High", Cities: []string{"kampala", "gulu", "lira", "mbarara", "jinja"}, Demonyms: []string{"ugandan"}, Continent: "Africa"},
	"Kenya": {Risk: "Low-Moderate", Cities: []string{"nairobi", "mombasa", "kisumu", "nakuru", "eldoret"}, Demonyms: []string{"kenyan"}, Continent: "Africa"},
	"Tanzania": {Risk: "High", Cities: []string{"dar es salaam", "dodoma", "mwanza", "arusha", "mbeya"}, Demonyms: []string{"tanzanian"}, Continent: "Africa"},
	"Zambia": {Risk: "High", Cities: []string{"lusaka", "ndola", "kitwe", "livingstone"}, Demonyms: []string{"zambian"}, Continent: "Africa"},
	"Zimbabwe": {Risk: "Low-Moderate", Cities: []string{"harare", "bulawayo", "chitungwiza", "mutare"}, Demonyms: []string{"zimbabwean"}, Continent: "Africa"},
	"Mozambique": {Risk: "High", Cities: []string{"maputo", "matola", "beira", "nampula"}, Demonyms: []string{"mozambican"}, Continent: "Africa"},
	"Angola": {Risk: "High", Cities: []string{"luanda", "huambo", "lobito", "benguela"}, Demonyms: []string{"angolan"}, Continent: "Africa"},
	"Ghana": {Risk: "High", Cities: []string{"accra", "kumasi", "tamale", "cape coast"}, Demonyms: []string{"ghanian"}, Continent: "Africa"},
	"Burkina Faso": {Risk: "High", Cities: []string{"ouagadougou", "bobo-dioulasso"}, Demonyms: []string{"burkinabe"}, Continent: "Africa"},
	"Mali": {Risk: "High", Cities: []string{"bamako", "sikasso", "mopti"}, Demonyms: []string{"malian"}, Continent: "Africa"},
	"Niger": {Risk: "High", Cities: []string{"niamey", "zinder", "maradi"}, Demonyms: []string{"nigerien"}, Continent: "Africa"},
	"Chad": {Risk: "High", Cities: []string{"ndjamena", "moundou", "sarh"}, Demonyms: []string{"chadian"}, Continent: "Africa"},
	"Senegal": {Risk: "Low-Moderate", Cities: []string{"dakar", "touba", "thies"}, Demonyms: []string{"senegalese"}, Continent: "Africa"},
	"Guinea": {Risk: "High", Cities: []string{"conakry", "nzerekore", "kankan"}, Demonyms: []string{"guinean"}, Continent: "Africa"},
	"Ivory Coast": {Risk: "Low-Moderate", Cities: []string{"abidjan", "bouake", "daloa", "yamoussoukro"}, Demonyms: []string{"ivorian"}, Continent: "Africa"},
	"Liberia": {Risk: "Low-Moderate", Cities: []string{"monrovia", "gbarnga"}, Demonyms: []string{"liberian"}, Continent: "Africa"},
	"Sierra Leone": {Risk: "High", Cities: []string{"freetown", "bo", "kenema"}, Demonyms: []string{"sierra leonean"}, Continent: "Africa"},
	"Gambia": {Risk: "Low-Moderate", Cities: []string{"banjul", "serekunda"}, Demonyms: []string{"gambian"}, Continent: "Africa"},
	"Guinea-Bissau": {Risk: "Low-Moderate", Cities: []string{"bissau"}, Demonyms: []string{"guinea-bissauan"}, Continent: "Africa"},
	"Cape Verde": {Risk: "Low-Moderate", Cities: []string{"praia", "mindelo"}, Demonyms: []string{"cape verdean"}, Continent: "Africa"},
	"Equatorial Guinea": {Risk: "Low-Moderate", Cities: []string{"malabo", "bata"}, Demonyms: []string{"equatoguinean"}, Continent: "Africa"},
	"Gabon": {Risk: "Low-Moderate", Cities: []string{"libreville", "port-gentil"}, Demonyms: []string{"gabonese"}, Continent: "Africa"},
	"Republic of Congo": {Risk: "Low-Moderate", Cities: []string{"brazzaville", "pointe-noire"}, Demonyms: []string{"congolese"}, Continent: "Africa"},
	"Cameroon": {Risk: "Low-Moderate", Cities: []string{"yaounde", "douala", "garoua", "bamenda"}, Demonyms: []string{"cameroonian"}, Continent: "Africa"},
	"Central African Republic": {Risk: "High", Cities: []string{"bangui"}, Demonyms: []string{"central african"}, Continent: "Africa"},
	"Rwanda": {Risk: "Low-Moderate", Cities: []string{"kigali", "butare", "gitarama"}, Demonyms: []string{"rwandan"}, Continent: "Africa"},
	"Burundi": {Risk: "Low-Moderate", Cities: []string{"bujumbura", "gitega"}, Demonyms: []string{"burundian"}, Continent: "Africa"},
	"Djibouti": {Risk: "Low-Moderate", Cities: []string{"djibouti"}, Demonyms: []string{"djiboutian"}, Continent: "Africa"},
	"Somalia": {Risk: "Low-Moderate", Cities: []string{"mogadishu", "hargeisa", "bosaso"}, Demonyms: []string{"somali"}, Continent: "Africa"},
	"Eritrea": {Risk: "Low-Moderate", Cities: []string{"asmara", "keren"}, Demonyms: []string{"eritrean"}, Continent: "Africa"},
	"Sudan": {Risk: "Low-Moderate", Cities: []string{"khartoum", "omdurman", "port sudan", "kassala"}, Demonyms: []string{"sudanese"}, Continent: "Africa"},
	"South Sudan": {Risk: "Low-Moderate", Cities: []string{"juba", "wau", "malakal"}, Demonyms: []string{"south sudanese"}, Continent: "Africa"},
	"Madagascar": {Risk: "Low-Moderate", Cities: []string{"antananarivo", "toamasina", "antsirabe", "fianarantsoa"}, Demonyms: []string{"malagasy"}, Continent: "Africa"},
	"Mauritius": {Risk: "Low-Moderate", Cities: []string{"port louis"}, Demonyms: []string{"mauritian"}, Continent: "Africa"},
	"Comoros": {Risk: "Low-Moderate", Cities: []string{"moroni"}, Demonyms: []string{"comoran"}, Continent: "Africa"},
	"Seychelles": {Risk: "Low-Moderate", Cities: []string{"victoria"}, Demonyms: []string{"seychellois"}, Continent: "Africa"},
	"Sao Tome and Principe": {Risk: "Low-Moderate", Cities: []string{"sao tome"}, Demonyms: []string{"sao tomean"}, Continent: "Africa"},
	"India": {Risk: "Moderate", Cities: []string{"mumbai", "delhi", "bangalore", "hyderabad", "chennai", "kolkata", "pune", "ahmedabad", "jaipur", "lucknow", "kanpur", "nagpur", "bhubaneswar", "raipur", "ranchi"}, Demonyms: []string{"indian"}, Continent: "Asia"},
	"Indonesia": {Risk: "Moderate", Cities: []string{"jakarta", "surabaya", "medan", "bandung", "bekasi", "palembang", "makassar", "semarang", "jayapura", "manado"}, Demonyms: []string{"indonesian"}, Continent: "Asia"},
	"Myanmar": {Risk: "High", Cities: []string{"yangon", "mandalay", "naypyidaw", "mawlamyine"}, Demonyms: []string{"myanma"}, Continent: "Asia"},
	"Bangladesh": {Risk: "Moderate", Cities: []string{"dhaka", "chittagong", "sylhet", "rajshahi", "khulna", "cox's bazar"}, Demonyms: []string{"bangladeshi"}, Continent: "Asia"},
	"Pakistan": {Risk: "Moderate", Cities: []string{"islamabad", "karachi", "lahore", "faisalabad", "rawalpindi", "multan", "peshawar", "quetta"}, Demonyms: []string{"pakistani"}, Continent: "Asia"},
	"Afghanistan": {Risk: "Low-Moderate", Cities: []string{"kabul", "kandahar", "herat", "mazar-i-sharif"}, Demonyms: []string{"afghan"}, Continent: "Asia"},
	"Cambodia": {Risk: "Moderate", Cities: []string{"phnom penh", "siem reap", "battambang"}, Demonyms: []string{"cambodian"}, Continent: "Asia"},
	"Laos": {Risk: "Moderate", Cities: []string{"vientiane", "savannakhet", "pakse"}, Demonyms: []string{"lao"}, Continent: "Asia"},
	"Vietnam": {Risk: "Moderate", Cities: []string{"hanoi", "ho chi minh city", "da nang", "can tho", "hai phong"}, Demonyms: []string{"vietnamese"}, Continent: "Asia"},
	"Thailand": {Risk: "Moderate", Cities: []string{"bangkok", "chiang mai", "phuket", "hat yai"}, Demonyms: []string{"thai"}, Continent: "Asia"},
	"Malaysia": {Risk: "Moderate", Cities: []string{"kuala lumpur", "george town", "johor bahru", "kota kinabalu", "kuching"}, Demonyms: []string{"malaysian"}, Continent: "Asia"},
	"Philippines": {Risk: "Moderate", Cities: []string{"manila", "quezon city", "davao", "cebu city", "zamboanga", "cagayan de oro"}, Demonyms: []string{"filipino"}, Continent: "Asia"},
	"Papua New Guinea": {Risk: "High", Cities: []string{"port moresby", "lae", "mount hagen"}, Demonyms: []string{"papua new guinean"}, Continent: "Oceania"},
	"Solomon Islands": {Risk: "High", Cities: []string{"honiara"}, Demonyms: []string{"solomon islander"}, Continent: "Oceania"},
	"Vanuatu": {Risk: "Low-Moderate", Cities: []string{"port vila"}, Demonyms: []string{"vanuatuan"}, Continent: "Oceania"},
	"Fiji": {Risk: "Low-Moderate", Cities: []string{"suva"}, Demonyms: []string{"fijian"}, Continent: "Oceania"},
	"Brazil": {Risk: "Moderate", Cities: []string{"brasilia", "sao paulo", "rio de janeiro", "salvador", "fortaleza", "belo horizonte", "manaus", "curitiba", "recife", "porto alegre", "belem", "goiania", "campo grande", "macapa", "rio branco", "boa vista", "porto velho", "palmas"}, Demonyms: []string{"brazilian"}, Continent: "Latin America"},
	"Colombia": {Risk: "Moderate", Cities: []string{"bogota", "medellin", "cali", "barranquilla", "cartagena", "bucaramanga", "pereira", "santa marta", "villavicencio", "pasto", "monteria", "valledupar", "neiva", "armenia", "popayan", "sincelejo", "florencia", "riohacha", "yopal", "arauca", "puerto carreno", "leticia", "inirida", "mitu"}, Demonyms: []string{"colombian"}, Continent: "Latin America"},
	"Venezuela": {Risk: "Moderate", Cities: []string{"caracas", "maracaibo", "valencia", "barquisimeto", "maracay", "ciudad guayana", "maturin", "barcelona", "cumana", "merida", "puerto la cruz", "petare", "turmero", "barinas", "trujillo", "acarigua", "valera", "punto fijo", "los teques", "guanare", "san cristobal", "cabimas", "coro", "ciudad bolivar"}, Demonyms: []string{"venezuelan"}, Continent: "Latin America"},
	"Guyana": {Risk: "Low-Moderate", Cities: []string{"georgetown", "linden", "new amsterdam"}, Demonyms: []string{"guyanese"}, Continent: "Latin America"},
	"Suriname": {Risk: "Low-Moderate", Cities: []string{"paramaribo", "lelydorp", "nieuw nickerie"}, Demonyms: []string{"surinamese"}, Continent: "Latin America"},
	"French Guiana": {Risk: "Low-Moderate", Cities: []string{"cayenne", "saint-laurent-du-maroni"}, Demonyms: []string{"french guianese"}, Continent: "Latin America"},
	"Peru": {Risk: "Moderate", Cities: []string{"lima", "arequipa", "trujillo", "chiclayo", "piura", "iquitos", "cusco", "chimbote", "huancayo", "tacna", "ica", "sullana", "ayacucho", "cajamarca", "pucallpa", "huanuco", "tarapoto", "tumbes", "jaen", "moyobamba", "bagua", "chachapoyas", "yurimaguas"}, Demonyms: []string{"peruvian"}, Continent: "Latin America"},
	"Bolivia": {Risk: "Moderate", Cities: []string{"la paz", "santa cruz", "cochabamba", "sucre", "oruro", "tarija", "potosi", "trinidad", "cobija"}, Demonyms: []string{"bolivian"}, Continent: "Latin America"},
	"Panama": {Risk: "Moderate", Cities: []string{"panama city", "san miguelito", "tocumen", "david", "arraijan", "colon", "la chorrera", "santiago", "chitra", "las tablas"}, Demonyms: []string{"panamanian"}, Continent: "Latin America"},
	"Costa Rica": {Risk: "Low-Moderate", Cities: []string{"san jose", "cartago", "puntarenas", "limon", "alajuela", "heredia", "liberia"}, Demonyms: []string{"costa rican"}, Continent: "Latin America"},
	"Nicaragua": {Risk: "Low-Moderate", Cities: []string{"managua", "leon", "masaya", "matagalpa", "chinandega", "granada", "jinotega", "esteli", "nueva guinea", "bluefields", "puerto cabezas"}, Demonyms: []string{"nicaraguan"}, Continent: "Latin America"},
	"Honduras": {Risk: "Moderate", Cities: []string{"tegucigalpa", "san pedro sula", "choloma", "la ceiba", "el progreso", "comayagua", "puerto cortes", "siguatepeque", "tocoa", "juticalpa", "catacamas", "choluteca", "danli", "olanchito", "santa rosa de copan", "yoro", "tela", "roatan"}, Demonyms: []string{"honduran"}, Continent: "Latin America"},
	"Guatemala": {Risk: "Moderate", Cities: []string{"guatemala city", "mixco", "villa nueva", "petapa", "quetzaltenango", "villa canales", "escuintla", "chinautla", "chimaltenango", "huehuetenango", "amatitlan", "santa lucia cotzumalguapa", "puerto barrios", "coban", "san marcos", "antigua guatemala", "jalapa", "retalhuleu", "mazatenango", "zacapa", "chiquimula", "flores"}, Demonyms: []string{"guatemalan"}, Continent: "Latin America"},
	"Belize": {Risk: "Low-Moderate", Cities: []string{"belize city", "san ignacio", "belmopan", "orange walk", "corozal", "dangriga", "punta gorda"}, Demonyms: []string{"belizean"}, Continent: "Latin America"},
	"El Salvador": {Risk: "Low-Moderate", Cities: []string{"san salvador", "soyapango", "santa ana", "san miguel", "mejicanos", "santa tecla", "apopa", "delgado", "san marcos", "usulutan", "cojutepeque", "ilopango", "chalatenango", "ahuachapan", "sonsonate", "la union", "zacatecoluca"}, Demonyms: []string{"salvadoran"}, Continent: "Latin America"},
	"Haiti": {Risk: "Moderate", Cities: []string{"port-au-prince", "carrefour", "delmas", "cap-haitien", "petionville", "gonaives", "saint-marc", "les cayes", "port-de-paix", "jacmel", "limbe", "fort-liberte", "hinche", "petit-goave", "mirebalais", "jeremie"}, Demonyms: []string{"haitian"}, Continent: "Caribbean"},
	"Dominican Republic": {Risk: "Low-Moderate", Cities: []string{"santo domingo", "santiago", "santo domingo oeste", "santo domingo este", "san pedro de macoris", "la romana", "san cristobal", "puerto plata", "san francisco de macoris", "higüey", "concepcion de la vega", "moca", "bani", "bonao", "barahona", "mao", "monte cristi", "azua", "nagua", "esperanza"}, Demonyms: []string{"dominican"}, Continent: "Caribbean"},
	"Saudi Arabia": {Risk: "Low-Moderate", Cities: []string{"riyadh", "jeddah", "mecca", "medina", "dammam", "khobar", "tabuk", "abha", "khamis mushait", "najran", "jazan", "al-baha", "hail", "al-qassim", "dhahran", "qatif", "hafar al-batin"}, Demonyms: []string{"saudi"}, Continent: "Asia"},
	"Yemen": {Risk: "Low-Moderate", Cities: []string{"sanaa", "aden", "taiz", "hodeidah", "ibb", "dhamar", "mukalla", "hajjah", "amran", "saada", "al-bayda", "zinjibar", "al-mahwit", "marib", "shabwah", "al-jawf", "hadramawt", "lahij", "abyan", "al-daleh"}, Demonyms: []string{"yemeni"}, Continent: "Asia"},
	"Oman": {Risk: "Low-Moderate", Cities: []string{"muscat", "sohar", "salalah", "nizwa", "sur", "bahla", "ibri", "rustaq", "buraimi", "khasab", "adam", "samail", "ibra", "bidiya", "duqm"}, Demonyms: []string{"omani"}, Continent: "Asia"},
	"Iran": {Risk: "Low-Moderate", Cities: []string{"tehran", "mashhad", "isfahan", "karaj", "shiraz", "tabriz", "qom", "ahvaz", "kermanshah", "urmia", "rasht", "zahedan", "kerman", "nazarabad", "yazd", "ardabil", "bandar abbas", "eslamshahr", "zanjan", "hamadan", "azadshahr", "takestan", "khomeini shahr", "malard", "shahriar"}, Demonyms: []string{"iranian"}, Continent: "Asia"},
	"Malawi": {Risk: "High", Cities: []string{}, Demonyms: []string{"malawian"}, Continent: "Africa"},
	"Mauritania": {Risk: "Low-Moderate", Cities: []string{}, Demonyms: []string{"mauritanian"}, Continent: "Africa"},
	"Benin": {Risk: "Low-Moderate", Cities: []string{}, Demonyms: []string{"beninese"}, Continent: "Africa"},
	"Togo": {Risk: "Low-Moderate", Cities: []string{}, Demonyms: []string{"togolese"}, Continent: "Africa"},
	"Botswana": {Risk: "Low-Moderate", Cities: []string{}, Demonyms: []string{"botswanan"}, Continent: "Africa"},
	"Namibia": {Risk: "Low-Moderate", Cities: []string{}, Demonyms: []string{"namibian"}, Continent: "Africa"},
	"Swaziland": {Risk: "Low-Moderate", Cities: []string{}, Demonyms: []string{"swazi"}, Continent: "Africa"},
	"Timor-Leste": {Risk: "Low-Moderate", Cities: []string{}, Demonyms: []string{"timorese"}, Continent: "Asia"},
	"Nepal": {Risk: "Low-Moderate", Cities: []string{}, Demonyms: []string{"nepalese"}, Continent: "Asia"},
	"Bhutan": {Risk: "Low-Moderate", Cities: []string{}, Demonyms: []string{"bhutanese"}, Continent: "Asia"},
	"Sri Lanka": {Risk: "Low-Moderate", Cities: []string{}, Demonyms: []string{"sri lankan"}, Continent: "Asia"},
	"North Korea": {Risk: "Low-Moderate", Cities: []string{}, Demonyms: []string{"north korean"}, Continent: "Asia"},
	"China": {Risk: "Low-Moderate", Cities: []string{}, Demonyms: []string{"chinese"}, Continent: "Asia"},
	"Ecuador": {Risk: "Moderate", Cities: []string{}, Demonyms: []string{"ecuadorian"}, Continent: "Latin America"},
	"Mexico": {Risk: "Low-Moderate", Cities: []string{}, Demonyms: []string{"mexican"}, Continent: "North America"},
	"Iraq": {Risk: "Low-Moderate", Cities: []string{}, Demonyms: []string{"iraqi"}, Continent: "Asia"},
	"Syria": {Risk: "Low-Moderate", Cities: []string{}, Demonyms: []string{"syrian"}, Continent: "Asia"},
	"Turkey": {Risk: "Low-Moderate", Cities: []string{}, Demonyms: []string{"turkish"}, Continent: "Europe"},}
