package loadorder_test

import (
	"testing"

	"github.com/NeilSeligmann/libloadorder/internal/domain"
	"github.com/NeilSeligmann/libloadorder/internal/loadorder"
	"github.com/NeilSeligmann/libloadorder/internal/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tes5Profile() domain.GameProfile {
	return domain.GameProfile{
		ID:              domain.TES5,
		Method:          domain.Textfile,
		MasterFile:      "Skyrim.esm",
		ImplicitActives: []string{"Skyrim.esm", "Update.esm"},
	}
}

func tes4Profile() domain.GameProfile {
	return domain.GameProfile{
		ID:              domain.TES4,
		Method:          domain.Timestamp,
		MasterFile:      "Oblivion.esm",
		ImplicitActives: []string{"Oblivion.esm"},
	}
}

func newTES5(t *testing.T) (*loadorder.LoadOrder, *probe.StubProbe) {
	t.Helper()
	p := probe.NewStubProbe().
		AllowMaster("Skyrim.esm").
		AllowMaster("Update.esm").
		AllowMaster("Dawnguard.esm").
		Allow("Blank.esp").
		Allow("Another.esp")
	return loadorder.New(tes5Profile(), p), p
}

func TestLoadOrder_EmptyByDefault(t *testing.T) {
	lo, _ := newTES5(t)
	assert.Equal(t, 0, lo.Len())
	assert.Empty(t, lo.GetLoadOrder())
}

func TestSetLoadOrder_Basic(t *testing.T) {
	lo, _ := newTES5(t)

	err := lo.SetLoadOrder([]string{"Skyrim.esm", "Update.esm", "Blank.esp"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Skyrim.esm", "Update.esm", "Blank.esp"}, lo.GetLoadOrder())
	assert.True(t, lo.IsActive("Skyrim.esm"))
	assert.True(t, lo.IsActive("Update.esm"))
}

func TestSetLoadOrder_RejectsDuplicate(t *testing.T) {
	lo, _ := newTES5(t)

	err := lo.SetLoadOrder([]string{"Skyrim.esm", "Blank.esp", "BLANK.ESP"})
	require.Error(t, err)
	kind, ok := domain.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrKindInvalidOrder, kind)
	assert.Equal(t, 0, lo.Len())
}

func TestSetLoadOrder_TextfileRequiresMasterFirst(t *testing.T) {
	lo, _ := newTES5(t)

	err := lo.SetLoadOrder([]string{"Blank.esp", "Skyrim.esm"})
	require.Error(t, err)
	kind, _ := domain.KindOf(err)
	assert.Equal(t, domain.ErrKindInvalidOrder, kind)
}

func TestSetLoadOrder_NonMasterBeforeMasterRejected(t *testing.T) {
	lo, _ := newTES5(t)

	err := lo.SetLoadOrder([]string{"Skyrim.esm", "Blank.esp", "Update.esm"})
	require.Error(t, err)
	kind, _ := domain.KindOf(err)
	assert.Equal(t, domain.ErrKindInvalidOrder, kind)
}

func TestSetLoadOrder_InvalidPluginLeavesOrderUnchanged(t *testing.T) {
	lo, _ := newTES5(t)
	require.NoError(t, lo.SetLoadOrder([]string{"Skyrim.esm", "Blank.esp"}))

	err := lo.SetLoadOrder([]string{"Skyrim.esm", "NotAPlugin.esp"})
	require.Error(t, err)
	kind, _ := domain.KindOf(err)
	assert.Equal(t, domain.ErrKindInvalidPlugin, kind)

	assert.Equal(t, []string{"Skyrim.esm", "Update.esm", "Blank.esp"}, lo.GetLoadOrder())
}

func TestSetLoadOrder_PreservesActiveState(t *testing.T) {
	lo, _ := newTES5(t)
	require.NoError(t, lo.SetLoadOrder([]string{"Skyrim.esm", "Blank.esp"}))
	require.NoError(t, lo.Activate("Blank.esp"))

	require.NoError(t, lo.SetLoadOrder([]string{"Skyrim.esm", "Another.esp", "Blank.esp"}))
	assert.True(t, lo.IsActive("Blank.esp"))
	assert.False(t, lo.IsActive("Another.esp"))
}

func TestSetPosition_MovesExistingEntry(t *testing.T) {
	lo, _ := newTES5(t)
	require.NoError(t, lo.SetLoadOrder([]string{"Skyrim.esm", "Blank.esp", "Another.esp"}))

	require.NoError(t, lo.SetPosition("Another.esp", 2))
	assert.Equal(t, 2, lo.GetPosition("Another.esp"))
}

func TestSetPosition_InsertsNewEntry(t *testing.T) {
	lo, _ := newTES5(t)
	require.NoError(t, lo.SetLoadOrder([]string{"Skyrim.esm", "Blank.esp"}))

	require.NoError(t, lo.SetPosition("Another.esp", 2))
	assert.Equal(t, []string{"Skyrim.esm", "Update.esm", "Another.esp", "Blank.esp"}, lo.GetLoadOrder())
}

func TestSetPosition_NonMasterAtZeroThrows(t *testing.T) {
	lo, _ := newTES5(t)
	require.NoError(t, lo.SetLoadOrder([]string{"Skyrim.esm", "Blank.esp"}))

	err := lo.SetPosition("Blank.esp", 0)
	require.Error(t, err)
	kind, _ := domain.KindOf(err)
	assert.Equal(t, domain.ErrKindInvalidOrder, kind)
	assert.Equal(t, []string{"Skyrim.esm", "Update.esm", "Blank.esp"}, lo.GetLoadOrder())
}

func TestSetPosition_MasterFileMustStayAtZero(t *testing.T) {
	lo, _ := newTES5(t)
	require.NoError(t, lo.SetLoadOrder([]string{"Skyrim.esm", "Blank.esp"}))

	err := lo.SetPosition("Skyrim.esm", 1)
	require.Error(t, err)
	kind, _ := domain.KindOf(err)
	assert.Equal(t, domain.ErrKindInvalidOrder, kind)
}

func TestSetPosition_OutOfRangeClampsToEnd(t *testing.T) {
	lo, _ := newTES5(t)
	require.NoError(t, lo.SetLoadOrder([]string{"Skyrim.esm", "Blank.esp"}))

	require.NoError(t, lo.SetPosition("Another.esp", 999))
	assert.Equal(t, []string{"Skyrim.esm", "Update.esm", "Blank.esp", "Another.esp"}, lo.GetLoadOrder())
}

func TestActivate_InsertsMasterAtBoundary(t *testing.T) {
	lo, _ := newTES5(t)
	require.NoError(t, lo.SetLoadOrder([]string{"Skyrim.esm", "Blank.esp"}))

	require.NoError(t, lo.Activate("Dawnguard.esm"))
	assert.Equal(t, []string{"Skyrim.esm", "Update.esm", "Dawnguard.esm", "Blank.esp"}, lo.GetLoadOrder())
	assert.True(t, lo.IsActive("Dawnguard.esm"))
}

func TestActivate_InsertsNonMasterAtEnd(t *testing.T) {
	lo, _ := newTES5(t)
	require.NoError(t, lo.SetLoadOrder([]string{"Skyrim.esm", "Blank.esp"}))

	require.NoError(t, lo.Activate("Another.esp"))
	assert.Equal(t, []string{"Skyrim.esm", "Update.esm", "Blank.esp", "Another.esp"}, lo.GetLoadOrder())
}

func TestActivate_InvalidPluginFails(t *testing.T) {
	lo, _ := newTES5(t)

	err := lo.Activate("NotAPlugin.esp")
	require.Error(t, err)
	kind, _ := domain.KindOf(err)
	assert.Equal(t, domain.ErrKindInvalidPlugin, kind)
}

func TestActivate_TooManyActiveLeavesUnchanged(t *testing.T) {
	p := probe.NewStubProbe().AllowMaster("Skyrim.esm")
	names := []string{"Skyrim.esm"}
	for i := 0; i < 254; i++ {
		name := pluginName(i)
		p.Allow(name)
		names = append(names, name)
	}

	lo := loadorder.New(tes5Profile(), p)
	require.NoError(t, lo.SetLoadOrder(names))
	require.NoError(t, lo.SetActivePlugins(names))
	require.Equal(t, 255, len(lo.GetActivePlugins()))

	p.Allow("Overflow.esp")
	err := lo.Activate("Overflow.esp")
	require.Error(t, err)
	kind, _ := domain.KindOf(err)
	assert.Equal(t, domain.ErrKindTooManyActive, kind)
	assert.Equal(t, 255, len(lo.GetActivePlugins()))
}

func pluginName(i int) string {
	return "Plugin" + itoa(i) + ".esp"
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	digits := ""
	for i > 0 {
		digits = string(rune('0'+i%10)) + digits
		i /= 10
	}
	return digits
}

func TestDeactivate_ImplicitActiveWithValidFileFails(t *testing.T) {
	lo, _ := newTES5(t)
	require.NoError(t, lo.SetLoadOrder([]string{"Skyrim.esm"}))

	err := lo.Deactivate("Skyrim.esm")
	require.Error(t, err)
	kind, _ := domain.KindOf(err)
	assert.Equal(t, domain.ErrKindImplicitActive, kind)
}

func TestDeactivate_UntrackedIsNoOp(t *testing.T) {
	lo, _ := newTES5(t)
	require.NoError(t, lo.Deactivate("Blank.esp"))
}

func TestDeactivate_NonImplicitSucceeds(t *testing.T) {
	lo, _ := newTES5(t)
	require.NoError(t, lo.SetLoadOrder([]string{"Skyrim.esm", "Blank.esp"}))
	require.NoError(t, lo.Activate("Blank.esp"))

	require.NoError(t, lo.Deactivate("Blank.esp"))
	assert.False(t, lo.IsActive("Blank.esp"))
}

func TestSetActivePlugins_MissingImplicitActiveFails(t *testing.T) {
	lo, _ := newTES5(t)
	require.NoError(t, lo.SetLoadOrder([]string{"Skyrim.esm", "Update.esm", "Blank.esp"}))

	err := lo.SetActivePlugins([]string{"Skyrim.esm", "Blank.esp"})
	require.Error(t, err)
	kind, _ := domain.KindOf(err)
	assert.Equal(t, domain.ErrKindImplicitActive, kind)
}

func TestSetActivePlugins_DedupesCaseInsensitively(t *testing.T) {
	lo, _ := newTES5(t)
	require.NoError(t, lo.SetLoadOrder([]string{"Skyrim.esm", "Update.esm", "Blank.esp"}))

	err := lo.SetActivePlugins([]string{"Skyrim.esm", "Update.esm", "Blank.esp", "BLANK.ESP"})
	require.NoError(t, err)
	assert.Len(t, lo.GetActivePlugins(), 3)
}

func TestSetActivePlugins_InsertsNewEntries(t *testing.T) {
	lo, _ := newTES5(t)
	require.NoError(t, lo.SetLoadOrder([]string{"Skyrim.esm", "Update.esm"}))

	require.NoError(t, lo.SetActivePlugins([]string{"Skyrim.esm", "Update.esm", "Blank.esp"}))
	assert.Contains(t, lo.GetLoadOrder(), "Blank.esp")
	assert.True(t, lo.IsActive("Blank.esp"))
}

func TestSetActivePlugins_RequiresMasterFileForTextfile(t *testing.T) {
	lo, _ := newTES5(t)
	require.NoError(t, lo.SetLoadOrder([]string{"Skyrim.esm", "Update.esm", "Blank.esp"}))

	err := lo.SetActivePlugins([]string{"Update.esm", "Blank.esp"})
	require.Error(t, err)
}

func TestGetPluginAtPosition_OutOfRange(t *testing.T) {
	lo, _ := newTES5(t)

	_, err := lo.GetPluginAtPosition(0)
	require.Error(t, err)
	kind, _ := domain.KindOf(err)
	assert.Equal(t, domain.ErrKindOutOfRange, kind)
}

func TestGetPosition_SentinelForUnknown(t *testing.T) {
	lo, _ := newTES5(t)
	require.NoError(t, lo.SetLoadOrder([]string{"Skyrim.esm"}))

	assert.Equal(t, lo.Len(), lo.GetPosition("Unknown.esp"))
}

func TestTimestampMethod_NoMasterFirstRequirement(t *testing.T) {
	p := probe.NewStubProbe().AllowMaster("Oblivion.esm").AllowMaster("Morrowind.esm").Allow("Blank.esp")
	lo := loadorder.New(tes4Profile(), p)

	require.NoError(t, lo.SetLoadOrder([]string{"Morrowind.esm", "Oblivion.esm", "Blank.esp"}))
	assert.Equal(t, []string{"Morrowind.esm", "Oblivion.esm", "Blank.esp"}, lo.GetLoadOrder())
}

func TestTimestampMethod_NonMasterBeforeMasterStillRejected(t *testing.T) {
	p := probe.NewStubProbe().AllowMaster("Oblivion.esm").Allow("Blank.esp")
	lo := loadorder.New(tes4Profile(), p)

	err := lo.SetLoadOrder([]string{"Blank.esp", "Oblivion.esm"})
	require.Error(t, err)
	kind, _ := domain.KindOf(err)
	assert.Equal(t, domain.ErrKindInvalidOrder, kind)
}
