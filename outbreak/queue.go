// Implements the CaseQueue, which holds all cases awaiting secondary-case
// expansion. Cases are enqueued on discovery.

package outbreak

import (
	"fmt"
	"strings"
)

// CaseQueue is a FIFO queue of cases pending expansion. It models the
// frontier of the branching process: every case enters exactly once and
// leaves exactly once, unless the realization trips its case cap first.
type CaseQueue struct {
	queue []*Case
}

// Enqueue adds a case to the back of the queue.
func (cq *CaseQueue) Enqueue(c *Case) {
	cq.queue = append(cq.queue, c)
}

// Dequeue removes and returns the case at the front of the queue.
// Returns nil if the queue is empty.
func (cq *CaseQueue) Dequeue() *Case {
	if len(cq.queue) == 0 {
		return nil
	}
	c := cq.queue[0]
	cq.queue = cq.queue[1:]
	return c
}

// Len returns the number of cases in the queue.
func (cq *CaseQueue) Len() int {
	return len(cq.queue)
}

func (cq *CaseQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, c := range cq.queue {
		sb.WriteString(fmt.Sprintf("t=%.2f", c.InfectionTime))
		if i < len(cq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
