// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-quiz-sync/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Width(14).Faint(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	healthStyles = map[models.HealthStatus]lipgloss.Style{
		models.HealthHealthy:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		models.HealthWarning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		models.HealthCritical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
)

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func renderStatus(w io.Writer, s models.SyncStatus) {
	health := string(s.HealthStatus)
	if style, ok := healthStyles[s.HealthStatus]; ok {
		health = style.Render(health)
	}

	connectivity := "offline"
	if s.IsOnline {
		connectivity = "online"
	}
	if s.IsSyncing {
		connectivity += ", syncing"
	}

	lastSync := "never"
	if s.LastSyncTime != nil {
		lastSync = fmt.Sprintf("%s (%s ago)", s.LastSyncTime.Local().Format(time.DateTime),
			time.Duration(s.LastSyncAgeSeconds)*time.Second)
	}

	rows := []string{
		titleStyle.Render("Sync status"),
		row("health", health),
		row("network", connectivity),
		row("pending", fmt.Sprint(s.PendingCount)),
		row("failed", fmt.Sprint(s.FailedCount)),
		row("success rate", fmt.Sprintf("%.0f%%", s.SuccessRate*100)),
		row("last sync", lastSync),
	}
	if s.VolatileCount > 0 {
		rows = append(rows, row("in memory", fmt.Sprint(s.VolatileCount)))
	}
	if s.StoreError != "" {
		rows = append(rows, row("store", errorStyle.Render(s.StoreError)))
	}

	fmt.Fprintln(w, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
}

func renderManualSync(w io.Writer, r models.ManualSyncResult) {
	if r.Success {
		fmt.Fprintln(w, titleStyle.Render("✓ "+r.Message))
		return
	}
	fmt.Fprintln(w, errorStyle.Render("✗ "+r.Message))
}

func renderPending(w io.Writer, actions []models.PendingAction) {
	if len(actions) == 0 {
		fmt.Fprintln(w, helpStyle.Render("pending queue is empty"))
		return
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d pending", len(actions))))
	for _, a := range actions {
		line := fmt.Sprintf("#%-5d %-20s %s  queued %s", a.Seq, a.Type, a.ID, a.EnqueuedAt.Local().Format(time.DateTime))
		if a.RetryCount > 0 {
			line += fmt.Sprintf("  retries %d, next %s", a.RetryCount, a.NextAttemptAt.Local().Format(time.TimeOnly))
		}
		fmt.Fprintln(w, line)
		if a.LastError != "" {
			fmt.Fprintln(w, helpStyle.Render("       "+a.LastError))
		}
	}
}

func renderFailed(w io.Writer, actions []models.FailedAction) {
	if len(actions) == 0 {
		fmt.Fprintln(w, helpStyle.Render("failed bucket is empty"))
		return
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d failed", len(actions))))
	for _, a := range actions {
		fmt.Fprintf(w, "%-20s %s  %s after %d attempts\n", a.Type, a.ID, a.Reason, a.RetryCount)
		if a.LastError != "" {
			fmt.Fprintln(w, helpStyle.Render("  "+strings.TrimSpace(a.LastError)))
		}
	}
}
