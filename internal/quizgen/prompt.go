package quizgen

import (
	"fmt"
	"strings"
)

// roleHint frames the model as a subject teacher writing variations of the
// user's problem.
const roleHint = `Та бол %s багш.
Хэрэглэгчийн өгсөн бодлогын агуулга, сэдэв, түвшинд тулгуурлан төстэй шинэ мульти сонголттой бодлогууд зохионо.
Бодлогууд нь мэдээллийн хувьд логик, хэмжигдэхүүнүүд нь бодогдохоор,
бага зэрэг хувьсан өөрчлөгдсөн (тоо ба нөхцөл) байх ёстой.`

// outputContract pins the reply to a bare JSON array of problem objects.
const outputContract = `ГАРГАЛТЫН ХЭЛБЭР:
- JSON форматаар гаргах.
- Дараах бүтэцтэй байх:

[
  {
    "question": "Бодлогын текст",
    "options": ["сонголт 1", "сонголт 2", "сонголт 3", "сонголт 4"],
    "correct_answer": "зөв сонголтын текст"
  },
  ...
]

- Монгол хэлээр бич.
- ЗӨВХӨН JSON массив буцаахад анхаар. Ямар нэгэн нэмэлт текст бичихгүй.`

// TopicLabel formats a topic selection for display and prompting.
// The subtopic is optional.
func TopicLabel(mainTopic, subtopic string) string {
	if subtopic == "" {
		return mainTopic
	}
	return mainTopic + " - " + subtopic
}

// BuildPrompt composes the full generation instruction for a request.
// Pure and deterministic; the sample problem is included verbatim.
// Callers must validate the request first.
func BuildPrompt(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, roleHint, req.Subject)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "СЭДЭВ: %s\n\n", TopicLabel(req.MainTopic, req.Subtopic))

	fmt.Fprintf(&b, "Хэрэглэгчийн өгсөн бодлого:\n\n%s\n\n", req.SampleProblem)

	b.WriteString("ҮҮСГЭХ ДААЛГАВАР:\n")
	fmt.Fprintf(&b, "- Дээрх бодлоготой ижил сэдэв (%s), нэг түвшний **%d** шинэ мульти сонголттой бодлого зохионо.\n",
		TopicLabel(req.MainTopic, req.Subtopic), req.QuestionCount)
	fmt.Fprintf(&b, "- Бодлого бүрт яг %d сонголт өгөх.\n", req.OptionCount)
	b.WriteString("- Зөв хариултыг нэг сонголтод оруулах.\n")
	b.WriteString("- Хэмжигдэхүүн, нөхцөлийг өөрчилж төрөлжүүл.\n")
	b.WriteString("- Бодлого бүр: 1-2 догол мөр, ойлгомжтой, нэг утгатай байг.\n")
	fmt.Fprintf(&b, "- %s хичээлийн стандарт нэгж, тэмдэглэгээг ашигла.\n", req.Subject)
	b.WriteString("- Давхардсан нөхцөл, тоо бүү ашигла.\n\n")

	b.WriteString(outputContract)

	return b.String()
}
