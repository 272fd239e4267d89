package visit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/visigraph/visigraph/core"
	"github.com/visigraph/visigraph/visit"
)

func TestNodeAction_String(t *testing.T) {
	assert.Equal(t, "Continue", visit.Continue.String())
	assert.Equal(t, "Abort", visit.Abort.String())
	assert.Equal(t, "SkipChildren", visit.SkipChildren.String())
	assert.Equal(t, "Unknown", visit.NodeAction(42).String())
}

func TestBase_Defaults(t *testing.T) {
	var b visit.Base
	n := &core.Node{ID: 1}

	assert.True(t, b.Source() < 0, "Base must report an unset source")
	assert.Equal(t, visit.Continue, b.OnBeginNodeProcess(nil, n))
	assert.Equal(t, visit.Continue, b.OnNodeProcess(nil, n))
	assert.Equal(t, visit.Continue, b.OnEndNodeProcess(nil, n))
	assert.Equal(t, visit.Continue, b.OnNodeAlreadyVisited(nil, n))
}

func TestPrinter_Output(t *testing.T) {
	var sb strings.Builder
	p := visit.NewPrinter(&sb)

	assert.True(t, p.Source() < 0)
	p.OnNodeProcess(nil, &core.Node{ID: 3})
	p.OnNodeProcess(nil, &core.Node{ID: 11})
	p.OnEndComponentVisit(nil)
	p.OnNodeProcess(nil, &core.Node{ID: 0})
	p.OnEndComponentVisit(nil)

	assert.Equal(t, "3 11 \n0 \n", sb.String())
}

func TestPrinterFrom_Source(t *testing.T) {
	p := visit.NewPrinterFrom(nil, 4)
	assert.Equal(t, core.NodeID(4), p.Source())
}

func TestRecorder_Source(t *testing.T) {
	assert.True(t, (&visit.Recorder{}).Source() < 0, "zero value must report unset")
	assert.Equal(t, core.NodeID(2), (&visit.Recorder{Start: 2}).Source())
}
