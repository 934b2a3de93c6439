package artists

import (
	"strings"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

// phonePunctuation символы, игнорируемые при сравнении телефонов
var phonePunctuation = strings.NewReplacer("-", "", " ", "", "(", "", ")", "", ".", "")

func normalizePhone(phone string) string {
	return phonePunctuation.Replace(phone)
}

// matcher предикат поиска по фиксированному набору полей:
// подстрока имени или сценического имени без учета регистра,
// либо подстрока телефона без пунктуации
type matcher struct {
	text  string
	phone string
}

func newMatcher(query string) matcher {
	q := strings.ToLower(strings.TrimSpace(query))
	return matcher{text: q, phone: normalizePhone(q)}
}

func (m matcher) match(a *domain.Artist) bool {
	if m.phone != "" && strings.Contains(normalizePhone(a.Phone), m.phone) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Name), m.text) {
		return true
	}
	return a.StageName != "" && strings.Contains(strings.ToLower(a.StageName), m.text)
}
