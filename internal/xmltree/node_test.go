package xmltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Node {
	return Element("Document",
		Element("GrpHdr",
			Leaf("MsgId", "1704067200"),
			Leaf("NbOfTxs", "2"),
		),
		Element("PmtInf", Leaf("PmtInfId", "1")),
		Element("PmtInf", Leaf("PmtInfId", "2")),
	).WithAttr("xmlns", "urn:test")
}

func TestFind(t *testing.T) {
	doc := sample()

	msgID, ok := doc.Find("GrpHdr/MsgId")
	require.True(t, ok)
	assert.Equal(t, "1704067200", msgID.Text())
	assert.Equal(t, "2", doc.TextAt("GrpHdr/NbOfTxs"))
	assert.Equal(t, "", doc.TextAt("GrpHdr/CtrlSum"))

	_, ok = doc.Find("Nope/MsgId")
	assert.False(t, ok)
}

func TestFindAll(t *testing.T) {
	infos := sample().FindAll("PmtInf")
	require.Len(t, infos, 2)
	assert.Equal(t, "2", infos[1].TextAt("PmtInfId"))
}

func TestAttrs(t *testing.T) {
	leaf := Leaf("InstdAmt", "10.00", Attr{Name: "Ccy", Value: "SEK"})

	ccy, ok := leaf.Attr("Ccy")
	require.True(t, ok)
	assert.Equal(t, "SEK", ccy)

	_, ok = leaf.Attr("Missing")
	assert.False(t, ok)

	ns, ok := sample().Attr("xmlns")
	require.True(t, ok)
	assert.Equal(t, "urn:test", ns)
}

func TestImmutability(t *testing.T) {
	children := []Node{Leaf("A", "1")}
	parent := Element("P", children...)

	children[0] = Leaf("B", "2")
	assert.Equal(t, "A", parent.Children()[0].Name(), "caller slice must not leak into the node")

	got := parent.Children()
	got[0] = Leaf("C", "3")
	assert.Equal(t, "A", parent.Children()[0].Name(), "accessor slice must be a copy")

	base := Leaf("X", "")
	withA := base.WithAttr("a", "1")
	withB := withA.WithAttr("b", "2")
	assert.Empty(t, base.Attrs())
	assert.Len(t, withA.Attrs(), 1)
	assert.Len(t, withB.Attrs(), 2)

	attrs := withB.Attrs()
	attrs[0].Value = "changed"
	v, _ := withB.Attr("a")
	assert.Equal(t, "1", v)
}

func TestLen(t *testing.T) {
	assert.Equal(t, 3, sample().Len())
	assert.Equal(t, 0, Leaf("A", "x").Len())
}
