// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/sharepoint-uploader/internal/auth"
	"github.com/MKhiriev/sharepoint-uploader/internal/logger"
	"github.com/MKhiriev/sharepoint-uploader/internal/service"
	"github.com/MKhiriev/sharepoint-uploader/internal/store"
	"github.com/MKhiriev/sharepoint-uploader/internal/validators"
	"github.com/MKhiriev/sharepoint-uploader/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusField int

const (
	focusEmail focusField = iota
	focusFolder
	focusPath
	focusFiles

	focusCount
)

const (
	msgAbandoned     = "Upload abandoned."
	msgNothingToCopy = "Nothing to copy yet."
	msgCopied        = "Upload results copied to clipboard."
)

// FormDefaults prefills the form inputs.
type FormDefaults struct {
	Email    string
	FolderID string
}

type uploadModel struct {
	ctx       context.Context
	uploader  service.Uploader
	validator validators.Validator
	tokens    auth.TokenSource
	selection store.FileSelection
	info      models.AppBuildInfo
	logger    *logger.Logger

	inputs []textinput.Model
	focus  focusField
	cursor int

	uploading bool
	cancel    context.CancelFunc
	seq       int
	spinner   spinner.Model

	primary   banner
	secondary banner
	bannerSeq int

	lastResults []models.FileResult
	quitting    bool
}

func newUploadModel(
	ctx context.Context,
	uploader service.Uploader,
	validator validators.Validator,
	tokens auth.TokenSource,
	selection store.FileSelection,
	info models.AppBuildInfo,
	logger *logger.Logger,
	defaults FormDefaults,
) uploadModel {
	inputs := make([]textinput.Model, focusFiles)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 256
	}
	inputs[focusEmail].Placeholder = "name@example.com"
	inputs[focusEmail].SetValue(defaults.Email)
	inputs[focusFolder].Placeholder = "folder id"
	inputs[focusFolder].SetValue(defaults.FolderID)
	inputs[focusPath].Placeholder = "file or directory, enter to add"
	inputs[focusPath].CharLimit = 4096
	inputs[focusEmail].Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return uploadModel{
		ctx:       ctx,
		uploader:  uploader,
		validator: validator,
		tokens:    tokens,
		selection: selection,
		info:      info,
		logger:    logger,
		inputs:    inputs,
		focus:     focusEmail,
		spinner:   s,
	}
}

func (m uploadModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m uploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case uploadDoneMsg:
		return m.handleUploadDone(msg)
	case bannerExpiredMsg:
		switch {
		case msg.slot == primarySlot && m.primary.id == msg.id:
			m.primary = banner{}
		case msg.slot == secondarySlot && m.secondary.id == msg.id:
			m.secondary = banner{}
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("copy to clipboard failed")
			return m.showPrimary(msg.err.Error(), severityError)
		}
		return m.showPrimary(msgCopied, severityInfo)
	case spinner.TickMsg:
		if !m.uploading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m uploadModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		if m.cancel != nil {
			m.cancel()
		}
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.abandon):
		return m.abandon()
	case key.Matches(msg, keys.submit):
		return m.submit()
	case key.Matches(msg, keys.copy):
		return m.copyResults()
	case key.Matches(msg, keys.next):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, keys.prev):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	}

	if m.focus == focusFiles {
		return m.handleFilesKey(msg)
	}

	if m.focus == focusPath && key.Matches(msg, keys.enter) {
		return m.addPath()
	}

	return m.updateFocusedInput(msg)
}

func (m uploadModel) handleFilesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < m.selection.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.remove):
		return m.removeCurrent()
	}
	return m, nil
}

func (m uploadModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus >= focusFiles || m.uploading {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m uploadModel) setFocus(focus focusField) (uploadModel, tea.Cmd) {
	m.focus = focus

	var cmd tea.Cmd
	for i := range m.inputs {
		if focusField(i) == focus {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return m, cmd
}

// ── selection ───────────────────────────────────────────────────────────────

func (m uploadModel) addPath() (tea.Model, tea.Cmd) {
	if m.uploading {
		return m, nil
	}

	raw := strings.TrimSpace(m.inputs[focusPath].Value())
	if raw == "" {
		return m, nil
	}

	files, err := store.CollectLocalFiles(expandHome(raw))
	if err != nil {
		m.logger.Warn().Err(err).Str("path", raw).Msg("cannot add path")
		return m.showPrimary(fmt.Sprintf("Cannot add %s.", raw), severityError)
	}

	added := m.selection.Add(files...)
	m.inputs[focusPath].SetValue("")
	m.logger.Debug().Str("path", raw).Int("found", len(files)).Int("added", added).Msg("path added")

	return m.showPrimary(fmt.Sprintf("Added %d of %d file(s).", added, len(files)), severityInfo)
}

func (m uploadModel) removeCurrent() (tea.Model, tea.Cmd) {
	if m.uploading {
		return m, nil
	}

	files := m.selection.Files()
	if m.cursor < 0 || m.cursor >= len(files) {
		return m, nil
	}

	m.selection.Remove(files[m.cursor].Path())
	if m.cursor >= m.selection.Len() && m.cursor > 0 {
		m.cursor--
	}
	return m, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// ── upload ──────────────────────────────────────────────────────────────────

func (m uploadModel) submit() (tea.Model, tea.Cmd) {
	if m.uploading {
		return m, nil
	}

	email := strings.TrimSpace(m.inputs[focusEmail].Value())
	folderID := strings.TrimSpace(m.inputs[focusFolder].Value())

	req := models.UploadRequest{
		Email:    email,
		FolderID: folderID,
		Files:    m.selection.Files(),
	}
	if err := m.validator.Validate(m.ctx, req); err != nil {
		return m.showPrimary(validators.Messages(err), severityError)
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.seq++
	m.cancel = cancel
	m.uploading = true
	m.primary = banner{}
	m.secondary = banner{}

	return m, tea.Batch(m.spinner.Tick, m.cmdUpload(ctx, m.seq, req))
}

// cmdUpload fetches the token and runs the upload for operation seq.
func (m uploadModel) cmdUpload(ctx context.Context, seq int, req models.UploadRequest) tea.Cmd {
	uploader := m.uploader
	tokens := m.tokens
	log := m.logger
	return func() tea.Msg {
		req.Token = auth.TokenOrEmpty(ctx, tokens, log)
		outcome, err := uploader.Upload(ctx, req)
		return uploadDoneMsg{seq: seq, outcome: outcome, err: err}
	}
}

func (m uploadModel) handleUploadDone(msg uploadDoneMsg) (tea.Model, tea.Cmd) {
	if !m.uploading || msg.seq != m.seq {
		m.logger.Debug().Int("seq", msg.seq).Msg("ignoring result of abandoned upload")
		return m, nil
	}

	m.uploading = false
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}

	if msg.err == nil {
		m.lastResults = msg.outcome.Results
		m.selection.Clear()
		m.cursor = 0
		return m.showPrimary(models.MsgUploadSuccess, severitySuccess)
	}

	kind := models.KindOf(msg.err)
	if kind == models.KindUnknown {
		m.logger.Error().Err(msg.err).Msg("unexpected upload error")
		return m.showPrimary(models.MsgUploadRejected, severityError)
	}

	var uploadErr *models.UploadError
	errors.As(msg.err, &uploadErr)

	switch kind {
	case models.AuthExpired:
		m.logger.Warn().Str("diagnostic", uploadErr.Diagnostic()).Msg("session expired, sign in again")
	default:
		m.logger.Error().Str("diagnostic", uploadErr.Diagnostic()).Msg("upload failed")
	}

	var cmds []tea.Cmd
	if notice := uploadErr.Notice(); notice != "" {
		var cmd tea.Cmd
		m, cmd = m.showSecondary(notice)
		cmds = append(cmds, cmd)
	}

	next, cmd := m.showPrimary(uploadErr.Error(), severityError)
	return next, tea.Batch(append(cmds, cmd)...)
}

// abandon stops waiting for the running upload. The request is cancelled
// but a batch already accepted by the server stays uploaded.
func (m uploadModel) abandon() (tea.Model, tea.Cmd) {
	if !m.uploading {
		return m, nil
	}

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.uploading = false
	m.seq++

	return m.showPrimary(msgAbandoned, severityInfo)
}

// ── banners & clipboard ─────────────────────────────────────────────────────

func (m uploadModel) showPrimary(text string, sev severity) (uploadModel, tea.Cmd) {
	m.bannerSeq++
	m.primary = banner{id: m.bannerSeq, text: text, severity: sev}
	return m, cmdExpireBanner(primarySlot, m.bannerSeq)
}

func (m uploadModel) showSecondary(text string) (uploadModel, tea.Cmd) {
	m.bannerSeq++
	m.secondary = banner{id: m.bannerSeq, text: text, severity: severityError}
	return m, cmdExpireBanner(secondarySlot, m.bannerSeq)
}

func (m uploadModel) copyResults() (tea.Model, tea.Cmd) {
	if len(m.lastResults) == 0 {
		return m.showPrimary(msgNothingToCopy, severityInfo)
	}

	data, err := json.MarshalIndent(m.lastResults, "", "  ")
	if err != nil {
		return m.showPrimary(err.Error(), severityError)
	}
	return m, cmdCopyToClipboard(string(data))
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
