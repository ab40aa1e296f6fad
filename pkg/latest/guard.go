package latest

import "sync"

// Ticket метка запроса: ключ (например, выбранная дата) и порядковый номер
type Ticket[K comparable] struct {
	Key K
	Seq uint64
}

// Guard реализует правило "побеждает последний запрос"
// Каждый новый запрос получает Ticket через Issue; ответ применяется,
// только если его Ticket совпадает с последним выданным
type Guard[K comparable] struct {
	mu      sync.Mutex
	seq     uint64
	current Ticket[K]
	issued  bool
}

// Issue регистрирует новый запрос и делает все предыдущие устаревшими
func (g *Guard[K]) Issue(key K) Ticket[K] {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.seq++
	g.current = Ticket[K]{Key: key, Seq: g.seq}
	g.issued = true
	return g.current
}

// Accept возвращает true, если ответ с таким Ticket актуален
func (g *Guard[K]) Accept(t Ticket[K]) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.issued && g.current == t
}

// Current возвращает последний выданный Ticket
func (g *Guard[K]) Current() (Ticket[K], bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.current, g.issued
}
