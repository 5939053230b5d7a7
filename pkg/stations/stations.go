// Package stations holds the static station gazetteer and resolves user
// input (exact id or fuzzy name in any supported language) to a station.
package stations

import "github.com/lirantal/railil/pkg/models"

// All is the station table, keyed by the railway's numeric station ids.
// Loaded once at process start and read-only afterwards.
var All = []models.Station{
	{ID: "680", Name: models.StationName{EN: "Jerusalem - Yitzhak Navon", HE: "ירושלים - יצחק נבון", RU: "Иерусалим - Ицхак Навон", AR: "أورشليم القدس - يتسحاق نافون"}},
	{ID: "3700", Name: models.StationName{EN: "Tel Aviv - Savidor Center", HE: "תל אביב - סבידור מרכז", RU: "Тель-Авив - Савидор Центр", AR: "تل أبيب - ساڤيدور المركز"}},
	{ID: "4600", Name: models.StationName{EN: "Tel Aviv - HaShalom", HE: "תל אביב - השלום", RU: "Тель-Авив - ХаШалом", AR: "تل أبيب - هشالوم"}},
	{ID: "4900", Name: models.StationName{EN: "Tel Aviv - HaHagana", HE: "תל אביב - ההגנה", RU: "Тель-Авив - ХаХагана", AR: "تل أبيب - ههچناه"}},
	{ID: "3600", Name: models.StationName{EN: "Tel Aviv - University", HE: "תל אביב - אוניברסיטה", RU: "Тель-Авив - Университет", AR: "تل أبيب - الجامعة"}},
	{ID: "3500", Name: models.StationName{EN: "Herzliya", HE: "הרצליה", RU: "Герцлия", AR: "هرتسليا"}},
	{ID: "3300", Name: models.StationName{EN: "Netanya", HE: "נתניה", RU: "Нетания", AR: "نتانيا"}},
	{ID: "3310", Name: models.StationName{EN: "Netanya - Sapir", HE: "נתניה - ספיר", RU: "Нетания - Сапир", AR: "نتانيا - سابير"}},
	{ID: "2800", Name: models.StationName{EN: "Binyamina", HE: "בנימינה", RU: "Биньямина", AR: "بنيامينا"}},
	{ID: "2820", Name: models.StationName{EN: "Caesarea - Pardes Hana", HE: "קיסריה - פרדס חנה", RU: "Кейсария - Пардес Хана", AR: "قيساريا - برديس حنا"}},
	{ID: "2500", Name: models.StationName{EN: "Haifa - Hof HaCarmel", HE: "חיפה - חוף הכרמל", RU: "Хайфа - Хоф ХаКармель", AR: "حيفا - شاطئ الكرمل"}},
	{ID: "2300", Name: models.StationName{EN: "Haifa Center - HaShmona", HE: "חיפה מרכז - השמונה", RU: "Хайфа Центр - ХаШмона", AR: "حيفا المركز - هشمونا"}},
	{ID: "2200", Name: models.StationName{EN: "Haifa - Bat Galim", HE: "חיפה - בת גלים", RU: "Хайфа - Бат Галим", AR: "حيفا - بات جليم"}},
	{ID: "700", Name: models.StationName{EN: "Kiryat Motzkin", HE: "קרית מוצקין", RU: "Кирьят Моцкин", AR: "كريات موتسكين"}},
	{ID: "1500", Name: models.StationName{EN: "Akko", HE: "עכו", RU: "Акко", AR: "عكا"}},
	{ID: "1600", Name: models.StationName{EN: "Nahariya", HE: "נהריה", RU: "Нагария", AR: "نهاريا"}},
	{ID: "8600", Name: models.StationName{EN: "Ben Gurion Airport", HE: "נמל תעופה בן גוריון", RU: "Аэропорт Бен-Гурион", AR: "مطار بن غوريون"}},
	{ID: "300", Name: models.StationName{EN: "Modi'in - Center", HE: "מודיעין - מרכז", RU: "Модиин - Центр", AR: "موديعين - المركز"}},
	{ID: "400", Name: models.StationName{EN: "Pa'ate Modi'in", HE: "פאתי מודיעין", RU: "Паатей Модиин", AR: "بأتي موديعين"}},
	{ID: "4500", Name: models.StationName{EN: "Rehovot", HE: "רחובות", RU: "Реховот", AR: "رحوبوت"}},
	{ID: "5000", Name: models.StationName{EN: "Lod", HE: "לוד", RU: "Лод", AR: "اللد"}},
	{ID: "5300", Name: models.StationName{EN: "Be'er Ya'akov", HE: "באר יעקב", RU: "Беэр Яаков", AR: "بئر يعقوب"}},
	{ID: "5800", Name: models.StationName{EN: "Ashdod - Ad Halom", HE: "אשדוד - עד הלום", RU: "Ашдод - Ад Халом", AR: "أشدود - عاد هلوم"}},
	{ID: "5900", Name: models.StationName{EN: "Ashkelon", HE: "אשקלון", RU: "Ашкелон", AR: "أشكلون"}},
	{ID: "6300", Name: models.StationName{EN: "Kiryat Gat", HE: "קרית גת", RU: "Кирьят Гат", AR: "كريات جات"}},
	{ID: "7300", Name: models.StationName{EN: "Be'er Sheva - Center", HE: "באר שבע - מרכז", RU: "Беэр-Шева Центр", AR: "بئر السبع - المركز"}},
	{ID: "7320", Name: models.StationName{EN: "Be'er Sheva - North/University", HE: "באר שבע - צפון/אוניברסיטה", RU: "Беэр-Шева Север/Университет", AR: "بئر السبع - شمال/الجامعة"}},
	{ID: "9100", Name: models.StationName{EN: "Rishon LeTsiyon - HaRishonim", HE: "ראשון לציון - הראשונים", RU: "Ришон ле-Цион - ХаРишоним", AR: "ريشون لتسيون - هريشونيم"}},
	{ID: "9200", Name: models.StationName{EN: "Rishon LeTsiyon - Moshe Dayan", HE: "ראשון לציון - משה דיין", RU: "Ришон ле-Цион - Моше Даян", AR: "ريشون لتسيون - موشيه ديان"}},
}

var index = make(map[string]models.Station, len(All))

func init() {
	for _, s := range All {
		index[s.ID] = s
	}
}

// ByID looks a station up by its exact id.
func ByID(id string) (models.Station, bool) {
	s, ok := index[id]
	return s, ok
}
