package quizgen

import (
	"errors"
	"reflect"
	"testing"
)

const embeddedThree = `Эндээс бодлогууд:

` + "```json" + `
[
  {
    "question": "10 Ω эсэргүүцэлтэй хэлхээнд 5 В хүчдэл залгахад гүйдэл хэд вэ?",
    "options": ["0.5 А", "2 А", "5 А", "50 А"],
    "correct_answer": "0.5 А"
  },
  {
    "question": "Машин 36 км/ц хурдтай явна. Энэ нь хэдэн м/с вэ?",
    "options": ["10 м/с", "36 м/с", "3.6 м/с", "100 м/с"],
    "correct_answer": "10 м/с"
  },
  {
    "question": "Чөлөөт уналтын хурдатгал ойролцоогоор хэд вэ?",
    "options": ["9.8 м/с²", "8.9 м/с²", "10.8 м/с²", "9.8 км/с²"],
    "correct_answer": "9.8 м/с²"
  }
]
` + "```" + `

Амжилт хүсье!`

func TestExtractProblems_RoundTrip(t *testing.T) {
	problems, err := ExtractProblems(embeddedThree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(problems) != 3 {
		t.Fatalf("expected 3 problems, got %d", len(problems))
	}

	want := Problem{
		Question:      "Машин 36 км/ц хурдтай явна. Энэ нь хэдэн м/с вэ?",
		Options:       []string{"10 м/с", "36 м/с", "3.6 м/с", "100 м/с"},
		CorrectAnswer: "10 м/с",
	}
	if !reflect.DeepEqual(problems[1], want) {
		t.Errorf("problem 2 mismatch:\ngot  %+v\nwant %+v", problems[1], want)
	}
}

func TestExtractProblems_Idempotent(t *testing.T) {
	first, err1 := ExtractProblems(embeddedThree)
	second, err2 := ExtractProblems(embeddedThree)

	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("re-running extraction on the same text must yield the same list")
	}
}

func TestExtractProblems_NoArray(t *testing.T) {
	for _, text := range []string{
		"",
		"Уучлаарай, бодлого зохиож чадсангүй.",
		"Зөвхөн тоонууд: [1, 2, 3]", // array, but not of objects
		"Хаагдаагүй: [ {\"question\": \"x\"",
	} {
		problems, err := ExtractProblems(text)
		if !errors.Is(err, ErrNoJSONFound) {
			t.Errorf("text %q: expected ErrNoJSONFound, got %v", text, err)
		}
		if len(problems) != 0 {
			t.Errorf("text %q: expected no problems, got %d", text, len(problems))
		}
	}
}

func TestExtractProblems_MalformedKeepsRaw(t *testing.T) {
	raw := `Хариу: [ {"question": "x", "options": ["a", "b"],} ] гэж гарлаа.`

	problems, err := ExtractProblems(raw)
	if len(problems) != 0 {
		t.Fatalf("expected no problems, got %d", len(problems))
	}

	var malformed *MalformedJSONError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *MalformedJSONError, got %v", err)
	}
	if malformed.Raw != raw {
		t.Error("the original accumulated text must be preserved for display")
	}
	if malformed.Unwrap() == nil {
		t.Error("the parse failure should be wrapped")
	}
}

func TestExtractProblems_MissingFieldsDefault(t *testing.T) {
	text := `[{"question": "Асуулт?"}, {"options": ["а", "б"]}, {}]`

	problems, err := ExtractProblems(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(problems) != 3 {
		t.Fatalf("expected 3 problems, got %d", len(problems))
	}

	if problems[0].Question != "Асуулт?" || len(problems[0].Options) != 0 || problems[0].CorrectAnswer != "" {
		t.Errorf("problem 1 defaults wrong: %+v", problems[0])
	}
	if problems[0].Options == nil {
		t.Error("missing options must default to an empty slice, not nil")
	}
	if problems[1].Question != "" || len(problems[1].Options) != 2 {
		t.Errorf("problem 2 defaults wrong: %+v", problems[1])
	}
}

func TestExtractProblems_BracesInsideStrings(t *testing.T) {
	text := `Тайлбар [умард] өмнө нь.
[
  {"question": "Олонлог {1, 2, 3}-ийн дэд олонлогийн тоо [хариу]?", "options": ["8", "6"], "correct_answer": "8"}
]`

	problems, err := ExtractProblems(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(problems) != 1 {
		t.Fatalf("expected 1 problem, got %d", len(problems))
	}
	if problems[0].Question != "Олонлог {1, 2, 3}-ийн дэд олонлогийн тоо [хариу]?" {
		t.Errorf("braces inside string values must survive extraction: %q", problems[0].Question)
	}
}

func TestExtractProblems_EscapedQuotes(t *testing.T) {
	text := `[{"question": "Юуг \"хурд\" гэдэг вэ?", "options": ["v", "a"], "correct_answer": "v"}]`

	problems, err := ExtractProblems(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if problems[0].Question != `Юуг "хурд" гэдэг вэ?` {
		t.Errorf("escaped quotes mishandled: %q", problems[0].Question)
	}
}

func TestExtractProblems_FirstArrayWins(t *testing.T) {
	text := `[{"question": "нэгдүгээр"}] дараа нь [{"question": "хоёрдугаар"}]`

	problems, err := ExtractProblems(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(problems) != 1 || problems[0].Question != "нэгдүгээр" {
		t.Errorf("expected only the first embedded array, got %+v", problems)
	}
}
