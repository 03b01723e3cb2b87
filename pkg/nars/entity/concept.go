package entity

import (
	"github.com/cognicore/nars/pkg/nars/bag"
	"github.com/cognicore/nars/pkg/nars/budget"
	"github.com/cognicore/nars/pkg/nars/term"
	"github.com/google/uuid"
)

// Concept is the persistent indexing unit keyed by a constant term. It is
// created on first reference to that term and pruned by bag eviction when
// its priority decays below the concepts bag's displacement threshold.
type Concept struct {
	ID     uuid.UUID
	Term   *term.Term
	Budget budget.Value

	TaskLinks *bag.Bag[*TaskLink]
	TermLinks *bag.Bag[*TermLink]

	Beliefs   []Sentence
	Questions []*Task
	Goals     []Sentence
}

// ConceptConfig bounds a concept's belief/question/goal lists and its
// link bags' capacities and level counts.
type ConceptConfig struct {
	TaskLinkCapacity  int
	TaskLinkLevels    int
	TermLinkCapacity  int
	TermLinkLevels    int
	MaxBeliefs        int
	MaxQuestions      int
	MaxGoals          int
}

// NewConcept creates an empty concept for key, with freshly allocated
// link bags sized per cfg.
func NewConcept(key *term.Term, b budget.Value, cfg ConceptConfig, rng bag.RNG) *Concept {
	return &Concept{
		ID:        uuid.New(),
		Term:      key,
		Budget:    b,
		TaskLinks: bag.New[*TaskLink](cfg.TaskLinkCapacity, cfg.TaskLinkLevels, rng),
		TermLinks: bag.New[*TermLink](cfg.TermLinkCapacity, cfg.TermLinkLevels, rng),
	}
}

// BagKey satisfies bag.Item so Concepts can be stored in Memory's concepts
// bag, keyed by the printed form of their term.
func (c *Concept) BagKey() string { return c.Term.String() }

// BudgetValue satisfies bag.Item.
func (c *Concept) BudgetValue() budget.Value { return c.Budget }

// SetBudget satisfies bag.Item.
func (c *Concept) SetBudget(b budget.Value) { c.Budget = b }

// AddBelief inserts a judgment sentence into the belief table, sorted by
// descending confidence and truncated to cfg.MaxBeliefs. Revision against
// an existing belief over the same content is the caller's
// responsibility (pkg/nars/rules/matching); AddBelief only maintains the
// ranked table.
func (c *Concept) AddBelief(s Sentence, maxBeliefs int) {
	c.Beliefs = insertRanked(c.Beliefs, s, maxBeliefs)
}

// AddGoal inserts a goal sentence into the goal table with the same
// ranking discipline as AddBelief.
func (c *Concept) AddGoal(s Sentence, maxGoals int) {
	c.Goals = insertRanked(c.Goals, s, maxGoals)
}

func insertRanked(list []Sentence, s Sentence, max int) []Sentence {
	i := 0
	for i < len(list) && rank(list[i]) >= rank(s) {
		i++
	}
	list = append(list, Sentence{})
	copy(list[i+1:], list[i:])
	list[i] = s
	if len(list) > max {
		list = list[:max]
	}
	return list
}

func rank(s Sentence) float64 {
	if s.Truth == nil {
		return 0
	}
	return s.Truth.Confidence
}

// AddQuestion appends q to the question list, truncating the oldest
// entries first once maxQuestions is exceeded.
func (c *Concept) AddQuestion(q *Task, maxQuestions int) {
	c.Questions = append(c.Questions, q)
	if len(c.Questions) > maxQuestions {
		c.Questions = c.Questions[len(c.Questions)-maxQuestions:]
	}
}

// BestBelief returns the best-ranked belief, or nil if the concept holds
// none, for use as the candidate belief a newly arrived task is matched
// against.
func (c *Concept) BestBelief() *Sentence {
	if len(c.Beliefs) == 0 {
		return nil
	}
	return &c.Beliefs[0]
}
