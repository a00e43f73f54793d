package tui

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/goliatone/go-siuscript/pkg/form"
	"github.com/goliatone/go-siuscript/pkg/registry"
	"github.com/goliatone/go-siuscript/pkg/script"
	"github.com/goliatone/go-siuscript/pkg/sink"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	infoMessages []string
	inputPrompts []string
	inputPos     int
	selectPos    int
	confirmPos   int
	selectErr    error
	infoErr      error
}

// Input mimics survey: an empty answer returns the default.
func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputPrompts = append(s.inputPrompts, cfg.Message)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	if val == "" {
		return cfg.Default, nil
	}
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectErr != nil {
		return -1, s.selectErr
	}
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	if s.infoErr != nil {
		return s.infoErr
	}
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

// failingSink fails writes for one path and delegates the rest.
type failingSink struct {
	sink.Sink
	failPath string
}

func (f failingSink) Persist(ctx context.Context, doc script.Document, path string) (string, error) {
	if path == f.failPath {
		return "", sink.ErrWrite
	}
	return f.Sink.Persist(ctx, doc, path)
}

// 2G/3G answers; "" keeps the pre-filled default.
var twoGAnswers = []string{"Site1", "", "101", "102", "103", "104", "172.27.162.10", "172.27.162.70", ""}

var fourGAnswers = []string{"", "", "201", "202", "203"}

func newTestSession(t *testing.T, driver *stubDriver, out sink.Sink) *Session {
	t.Helper()
	gen, err := script.New()
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	session, err := NewSession(gen, WithPromptDriver(driver), WithSink(out))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return session
}

func TestRun_BothModeSavesBothScripts(t *testing.T) {
	mem := afero.NewMemMapFs()
	driver := &stubDriver{
		selectIdx: []int{2},
		inputs:    append(append(append([]string{}, twoGAnswers...), fourGAnswers...), "", ""),
		confirm:   []bool{true, true},
	}
	session := newTestSession(t, driver, sink.NewFileSink(sink.WithFs(mem)))

	report, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Mode != form.ModeBoth {
		t.Fatalf("mode = %v", report.Mode)
	}

	want := []Outcome{
		{Label: "2G3G", Path: "siu_Site1_2G3G.txt"},
		{Label: "4G", Path: "siu_lte_4G.txt"},
	}
	if diff := cmp.Diff(want, report.Outcomes); diff != "" {
		t.Fatalf("outcomes mismatch (-want +got):\n%s", diff)
	}

	data, err := afero.ReadFile(mem, "siu_lte_4G.txt")
	if err != nil {
		t.Fatalf("read 4g: %v", err)
	}
	if !strings.Contains(string(data), "portId TN_B\n") {
		t.Fatalf("4g script missing default port id")
	}

	wantInfo := []string{
		"Configuration 2G/3G",
		"Configuration 4G",
		"Succès : Script 2G3G généré et sauvegardé !",
		"Succès : Script 4G généré et sauvegardé !",
	}
	if diff := cmp.Diff(wantInfo, driver.infoMessages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
	if driver.inputPrompts[0] != "Nom Station :" {
		t.Fatalf("first prompt = %q", driver.inputPrompts[0])
	}
}

func TestRun_ValidationErrorThenRetry(t *testing.T) {
	mem := afero.NewMemMapFs()
	inputs := []string{"", "", "9999", "202", "203"}
	inputs = append(inputs, "", "", "201", "", "")
	inputs = append(inputs, "out/lte")
	driver := &stubDriver{
		selectIdx: []int{1},
		inputs:    inputs,
		confirm:   []bool{true, true},
	}
	session := newTestSession(t, driver, sink.NewFileSink(sink.WithFs(mem)))

	report, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if diff := cmp.Diff([]Outcome{{Label: "4G", Path: "out/lte.txt"}}, report.Outcomes); diff != "" {
		t.Fatalf("outcomes mismatch (-want +got):\n%s", diff)
	}
	if driver.infoMessages[1] != "Erreur : Les VLANs 4G doivent être des entiers entre 1 et 4094 !" {
		t.Fatalf("unexpected validation message: %q", driver.infoMessages[1])
	}

	data, err := afero.ReadFile(mem, "out/lte.txt")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "vlan=S1-CP tagvalue 202\n") {
		t.Fatalf("kept value not rendered")
	}
}

func TestRun_BothFailFastProducesNothing(t *testing.T) {
	mem := afero.NewMemMapFs()
	bad := append([]string{}, twoGAnswers...)
	bad[2] = "0"
	driver := &stubDriver{
		selectIdx: []int{2},
		inputs:    append(bad, fourGAnswers...),
		confirm:   []bool{false},
	}
	session := newTestSession(t, driver, sink.NewFileSink(sink.WithFs(mem)))

	report, err := session.Run(context.Background())
	if !errors.Is(err, ErrGenerationAbandoned) {
		t.Fatalf("expected ErrGenerationAbandoned, got %v", err)
	}
	if len(report.Outcomes) != 0 {
		t.Fatalf("expected no outcomes, got %d", len(report.Outcomes))
	}
	if exists, _ := afero.Exists(mem, "siu_lte_4G.txt"); exists {
		t.Fatalf("4g script must not be written when 2g3g is invalid")
	}
}

func TestRun_CancelAndWriteFailureDoNotStopSiblings(t *testing.T) {
	mem := afero.NewMemMapFs()
	driver := &stubDriver{
		selectIdx: []int{2},
		inputs:    append(append(append([]string{}, twoGAnswers...), fourGAnswers...), ""),
		confirm:   []bool{false, true},
	}
	out := failingSink{Sink: sink.NewFileSink(sink.WithFs(mem)), failPath: "siu_lte_4G.txt"}
	session := newTestSession(t, driver, out)

	report, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(report.Outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(report.Outcomes))
	}
	if !report.Outcomes[0].Cancelled {
		t.Fatalf("first document should be cancelled")
	}
	if !errors.Is(report.Outcomes[1].Err, sink.ErrWrite) {
		t.Fatalf("expected write error, got %v", report.Outcomes[1].Err)
	}
	last := driver.infoMessages[len(driver.infoMessages)-1]
	if !strings.HasPrefix(last, "Erreur : Erreur lors de la sauvegarde : ") {
		t.Fatalf("unexpected message: %q", last)
	}
}

func TestRun_OverwriteDeclined(t *testing.T) {
	mem := afero.NewMemMapFs()
	if err := afero.WriteFile(mem, "siu_lte_4G.txt", []byte("old"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	driver := &stubDriver{
		selectIdx: []int{1},
		inputs:    append(append([]string{}, fourGAnswers...), ""),
		confirm:   []bool{true, false},
	}
	session := newTestSession(t, driver, sink.NewFileSink(sink.WithFs(mem)))

	report, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !report.Outcomes[0].Cancelled {
		t.Fatalf("expected cancelled outcome")
	}
	data, _ := afero.ReadFile(mem, "siu_lte_4G.txt")
	if string(data) != "old" {
		t.Fatalf("existing file overwritten")
	}
}

func TestRun_Aborted(t *testing.T) {
	driver := &stubDriver{selectErr: ErrAborted}
	session := newTestSession(t, driver, sink.NewFileSink(sink.WithFs(afero.NewMemMapFs())))

	if _, err := session.Run(context.Background()); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestRun_InvalidSelectionReprompts(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{-1, 1},
		inputs:    append(append([]string{}, fourGAnswers...), ""),
		confirm:   []bool{false},
	}
	session := newTestSession(t, driver, sink.NewFileSink(sink.WithFs(afero.NewMemMapFs())))

	report, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Mode != form.ModeFourG {
		t.Fatalf("mode = %v", report.Mode)
	}
	if driver.infoMessages[0] != "Erreur : Veuillez sélectionner une technologie !" {
		t.Fatalf("unexpected message: %q", driver.infoMessages[0])
	}
}

func TestRun_FormFollowsGeneratorRegistry(t *testing.T) {
	raw, err := fs.ReadFile(registry.EmbeddedFS(), registry.DefaultCatalogue)
	if err != nil {
		t.Fatalf("read catalogue: %v", err)
	}
	custom := strings.NewReplacer(
		"title: Configuration 4G", "title: Réglages 4G",
		`default: "6"`, `default: "9"`,
	).Replace(string(raw))
	reg, err := registry.Parse([]byte(custom), "custom.yaml")
	if err != nil {
		t.Fatalf("parse catalogue: %v", err)
	}
	gen, err := script.New(script.WithRegistry(reg))
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}

	mem := afero.NewMemMapFs()
	driver := &stubDriver{
		selectIdx: []int{1},
		inputs:    append(append([]string{}, fourGAnswers...), ""),
		confirm:   []bool{true},
	}
	session, err := NewSession(gen, WithPromptDriver(driver), WithSink(sink.NewFileSink(sink.WithFs(mem))))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if _, err := session.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if driver.infoMessages[0] != "Réglages 4G" {
		t.Fatalf("section title = %q", driver.infoMessages[0])
	}
	data, err := afero.ReadFile(mem, "siu_lte_4G.txt")
	if err != nil {
		t.Fatalf("read script: %v", err)
	}
	if !strings.Contains(string(data), "EthernetInterface=Enode_B portnumber 9\n") {
		t.Fatalf("custom default not rendered:\n%s", data)
	}
}

func TestRun_DriverOutputFailureStops(t *testing.T) {
	broken := errors.New("terminal closed")
	driver := &stubDriver{
		selectIdx: []int{-1, 1},
		infoErr:   broken,
	}
	session := newTestSession(t, driver, sink.NewFileSink(sink.WithFs(afero.NewMemMapFs())))

	if _, err := session.Run(context.Background()); !errors.Is(err, broken) {
		t.Fatalf("expected driver error, got %v", err)
	}
	if driver.selectPos != 1 {
		t.Fatalf("select prompted %d times", driver.selectPos)
	}
}

func TestNewSession_RequiresGenerator(t *testing.T) {
	if _, err := NewSession(nil); err == nil {
		t.Fatalf("expected error for nil generator")
	}
}

func TestIndexOf(t *testing.T) {
	if got := indexOf([]string{"2G/3G", "4G", "Les trois"}, "4G"); got != 1 {
		t.Fatalf("indexOf = %d", got)
	}
	if got := indexOf(nil, "x"); got != -1 {
		t.Fatalf("indexOf = %d", got)
	}
}
