package game

// Snake is the ordered body, head first
type Snake struct {
	body []Point
}

// NewSnake builds a snake from segments given head first
func NewSnake(segments ...Point) *Snake {
	body := make([]Point, len(segments))
	copy(body, segments)
	return &Snake{body: body}
}

// Head returns the first segment. An empty snake is a programming error.
func (s *Snake) Head() Point {
	if len(s.body) == 0 {
		panic("game: head of empty snake")
	}
	return s.body[0]
}

// Tail returns the last segment
func (s *Snake) Tail() Point {
	if len(s.body) == 0 {
		panic("game: tail of empty snake")
	}
	return s.body[len(s.body)-1]
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.body)
}

// Occupies reports whether any segment is at p
func (s *Snake) Occupies(p Point) bool {
	for _, b := range s.body {
		if b == p {
			return true
		}
	}
	return false
}

// Advance prepends newHead and drops the tail unless the snake grew this tick
func (s *Snake) Advance(newHead Point, grew bool) {
	s.body = append([]Point{newHead}, s.body...)
	if !grew {
		s.body = s.body[:len(s.body)-1]
	}
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}
