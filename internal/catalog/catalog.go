// Package catalog holds the static subject → topic → subtopic hierarchy and
// the canned example problems used to pre-fill the sample input.
package catalog

// Subject identifies a school subject problems are generated for.
type Subject string

const (
	SubjectPhysics Subject = "Физик"
	SubjectMath    Subject = "Математик"
)

// Topic is one main topic and its subtopics, in display order.
type Topic struct {
	Name      string
	Subtopics []string
}

var physicsTopics = []Topic{
	{"Механик", []string{"Кинематик", "Динамик", "Статик", "Гравитаци", "Хөдөлгөөний хадгалалтын хууль", "Хүчний момент"}},
	{"Термодинамик", []string{"Хийн хууль", "Дулаан дамжуулалт", "Дулааны машин", "Энтропи", "Термодинамикийн хууль"}},
	{"Цахилгаан ба Соронз", []string{"Цахилгаан орон", "Цахилгаан гүйдэл", "Соронзон орон", "Цахилгаан соронзон индукц", "RC ба RL хэлхээ"}},
	{"Долгион ба Оптик", []string{"Долгионы шинж чанар", "Гэрлийн огилт", "Гэрлийн интерференц", "Гэрлийн туялзуур", "Хазайлт"}},
	{"Орчин үеийн физик", []string{"Квант механик", "Харьцангуй онол", "Атомын физик", "Цөмийн физик", "Элементар бөөмс"}},
}

var mathTopics = []Topic{
	{"Алгебр", []string{"Тэгшитгэл бодох", "Тэнцэтгэл биш", "Олон гишүүнт", "Комплекс тоо", "Матриц, тодорхойлогч"}},
	{"Геометр", []string{"Гурвалжин", "Дөрвөлжин", "Тойрог", "Геометр трансформац", "Стереометр"}},
	{"Тригонометр", []string{"Тригонометр функц", "Тригонометр тэгшитгэл", "Тригонометр тэнцэтгэл биш", "Инверс тригонометр функц"}},
	{"Математик анализ", []string{"Уламжлал", "Интеграл", "Дифференциал тэгшитгэл", "Функцийн судалгаа", "Ряд"}},
	{"Магадлал ба Статистик", []string{"Комбинаторик", "Магадлалын онол", "Санамсаргүй хэмжигдэхүүн", "Статистик дүн анализ", "Регрессийн анализ"}},
}

// Subjects returns the supported subjects in display order.
func Subjects() []Subject {
	return []Subject{SubjectPhysics, SubjectMath}
}

// Topics returns the main topics for a subject, in display order.
// Unknown subjects yield nil.
func Topics(subject Subject) []Topic {
	switch subject {
	case SubjectPhysics:
		return physicsTopics
	case SubjectMath:
		return mathTopics
	}
	return nil
}

// MainTopics returns the main topic names for a subject, in display order.
func MainTopics(subject Subject) []string {
	topics := Topics(subject)
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = t.Name
	}
	return names
}

// Subtopics returns the subtopics of a main topic, or nil if the
// (subject, topic) pair is not in the catalog.
func Subtopics(subject Subject, mainTopic string) []string {
	for _, t := range Topics(subject) {
		if t.Name == mainTopic {
			return t.Subtopics
		}
	}
	return nil
}

// Contains reports whether the (subject, topic, subtopic) triple exists in
// the catalog. An empty subtopic matches any topic that exists.
func Contains(subject Subject, mainTopic, subtopic string) bool {
	subs := Subtopics(subject, mainTopic)
	if subs == nil {
		return false
	}
	if subtopic == "" {
		return true
	}
	for _, s := range subs {
		if s == subtopic {
			return true
		}
	}
	return false
}

// ExampleProblem returns the canned sample problem for the given topic
// selection. Lookup cascades: (topic, subtopic) → topic → subject, so a
// usable example is always returned for a known subject. Unknown subjects
// yield the empty string.
func ExampleProblem(subject Subject, mainTopic, subtopic string) string {
	switch subject {
	case SubjectPhysics:
		return physicsExample(mainTopic, subtopic)
	case SubjectMath:
		return mathExample(mainTopic)
	}
	return ""
}

func physicsExample(mainTopic, subtopic string) string {
	switch mainTopic {
	case "Механик":
		switch subtopic {
		case "Кинематик":
			return "Машин 72 км/ц хурдтай явж байгаад 4 секундын дотор зогссон. Машины хурдатгал болон зогсох зам нь хэд вэ?"
		case "Динамик":
			return "15° налуу хавтгай дээр 2 кг масстай биетийг үрэлтгүй орчинд чирэхэд биед үйлчлэх татах хүч болон налуугийн дагуух хурдатгалыг ол. g=9.8 м/с²."
		}
		return "5 кг масстай бие 10 м/с хурдтайгаар хөдөлж байгаад 2 кг масстай тайван байгаа биетэй мөргөлдөв. Мөргөлдөөн уян хатан бол угсарсан биеийн хурдыг ол."
	case "Цахилгаан ба Соронз":
		return "10 Ω эсэргүүцэлтэй дамжуулагчид 12 В хүчдэл залгахад гүйдэл хэд вэ? Дамжуулагчаар 5 минут явахад ялгарах дулааны хэмжээг ол."
	}
	return "100 г масстай биеийн температур 20°C-аас 80°C хүртэл халаахад шаардагдах дулааны хэмжээг ол. Биеийн хувийн дулаан багтаамж 0.5 J/g°C байна."
}

func mathExample(mainTopic string) string {
	switch mainTopic {
	case "Алгебр":
		return "x² - 5x + 6 = 0 тэгшитгэлийн бодит шийдийг ол. Мөн язгууруудын нийлбэр ба үржвэрийг ол."
	case "Геометр":
		return "Гурвалжны талууд нь 6 см, 8 см, 10 см байна. Энэ гурвалжин тэгш өнцөгт эсэхийг шалгаад, талбайг нь ол."
	case "Математик анализ":
		return "y = 2x² - 4x + 1 функцийн уламжлалыг олж, экстремум цэгүүдийг тодорхойл."
	}
	return "Нэг шоо шидэхэд: a) 4-өөс их тоо буух магадлал, b) тэгш тоо буух магадлалыг ол."
}
