// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// serverStats counts server activity since process start.
type serverStats struct {
	toolCalls           atomic.Int64
	toolErrors          atomic.Int64
	certificatesDecoded atomic.Int64
}

var stats serverStats

func (s *serverStats) snapshot() map[string]any {
	return map[string]any{
		"tool_calls":           s.toolCalls.Load(),
		"tool_errors":          s.toolErrors.Load(),
		"certificates_decoded": s.certificatesDecoded.Load(),
	}
}

// ResourceUsageData represents the complete resource usage information
type ResourceUsageData struct {
	Timestamp      string         `json:"timestamp"`
	MemoryUsage    map[string]any `json:"memory_usage"`
	GCStats        map[string]any `json:"gc_stats"`
	SystemInfo     map[string]any `json:"system_info"`
	ServerStats    map[string]any `json:"server_stats"`
	DetailedMemory map[string]any `json:"detailed_memory,omitempty"`
}

const mb = 1024 * 1024

// CollectResourceUsage gathers current resource usage statistics
func CollectResourceUsage(detailed bool) *ResourceUsageData {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	data := &ResourceUsageData{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		MemoryUsage: map[string]any{
			"heap_alloc_mb":    float64(memStats.HeapAlloc) / mb,
			"heap_sys_mb":      float64(memStats.HeapSys) / mb,
			"heap_idle_mb":     float64(memStats.HeapIdle) / mb,
			"heap_inuse_mb":    float64(memStats.HeapInuse) / mb,
			"heap_released_mb": float64(memStats.HeapReleased) / mb,
			"heap_objects":     memStats.HeapObjects,
			"stack_inuse_mb":   float64(memStats.StackInuse) / mb,
			"stack_sys_mb":     float64(memStats.StackSys) / mb,
		},
		GCStats: map[string]any{
			"num_gc":          memStats.NumGC,
			"num_forced_gc":   memStats.NumForcedGC,
			"gc_cpu_fraction": memStats.GCCPUFraction,
			"enable_gc":       memStats.EnableGC,
		},
		SystemInfo: map[string]any{
			"go_version":    runtime.Version(),
			"go_os":         runtime.GOOS,
			"go_arch":       runtime.GOARCH,
			"num_cpu":       runtime.NumCPU(),
			"num_goroutine": runtime.NumGoroutine(),
		},
		ServerStats: stats.snapshot(),
	}

	if detailed {
		data.DetailedMemory = map[string]any{
			"alloc_mb":          float64(memStats.Alloc) / mb,
			"total_alloc_mb":    float64(memStats.TotalAlloc) / mb,
			"sys_mb":            float64(memStats.Sys) / mb,
			"mallocs":           memStats.Mallocs,
			"frees":             memStats.Frees,
			"gc_pause_total_ns": memStats.PauseTotalNs,
			"next_gc_mb":        float64(memStats.NextGC) / mb,
		}
	}

	return data
}

// FormatResourceUsageAsJSON formats resource usage data as JSON
func FormatResourceUsageAsJSON(data *ResourceUsageData) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal resource usage: %w", err)
	}
	return string(jsonData), nil
}

// FormatResourceUsageAsMarkdown formats resource usage data as a readable markdown report
func FormatResourceUsageAsMarkdown(data *ResourceUsageData) string {
	var buf strings.Builder

	buf.WriteString("# Resource Usage Report\n\n")
	if parsed, err := time.Parse(time.RFC3339, data.Timestamp); err == nil {
		fmt.Fprintf(&buf, "**Generated:** %s\n\n", parsed.Format("January 2, 2006 at 3:04 PM MST"))
	} else {
		fmt.Fprintf(&buf, "**Generated:** %s\n\n", data.Timestamp)
	}

	writeSection(&buf, "System Information", data.SystemInfo, []string{
		"Go Version", "go_version",
		"Operating System", "go_os",
		"Architecture", "go_arch",
		"CPU Count", "num_cpu",
		"Goroutines", "num_goroutine",
	})
	writeSection(&buf, "Memory Usage", data.MemoryUsage, []string{
		"Heap Allocated", "heap_alloc_mb",
		"Heap System", "heap_sys_mb",
		"Heap In Use", "heap_inuse_mb",
		"Heap Idle", "heap_idle_mb",
		"Heap Released", "heap_released_mb",
		"Heap Objects", "heap_objects",
		"Stack In Use", "stack_inuse_mb",
		"Stack System", "stack_sys_mb",
	})
	writeSection(&buf, "Garbage Collection", data.GCStats, []string{
		"GC Cycles", "num_gc",
		"Forced GC", "num_forced_gc",
		"GC CPU Fraction", "gc_cpu_fraction",
		"GC Enabled", "enable_gc",
	})
	writeSection(&buf, "Server Activity", data.ServerStats, []string{
		"Tool Calls", "tool_calls",
		"Tool Errors", "tool_errors",
		"Certificates Decoded", "certificates_decoded",
	})

	if data.DetailedMemory != nil {
		writeSection(&buf, "Detailed Memory Statistics", data.DetailedMemory, []string{
			"Current Alloc", "alloc_mb",
			"Total Alloc", "total_alloc_mb",
			"System Memory", "sys_mb",
			"Mallocs", "mallocs",
			"Frees", "frees",
			"GC Pause Total", "gc_pause_total_ns",
			"Next GC", "next_gc_mb",
		})
	}

	return buf.String()
}

func writeSection(buf *strings.Builder, title string, values map[string]any, fieldPairs []string) {
	fmt.Fprintf(buf, "## %s\n\n", title)
	buf.WriteString(formatMarkdownTable(values, fieldPairs))
}

// formatMarkdownTable renders label/key pairs present in data as a two
// column markdown table.
func formatMarkdownTable(data map[string]any, fieldPairs []string) string {
	var rows [][]string
	for i := 0; i+1 < len(fieldPairs); i += 2 {
		label, key := fieldPairs[i], fieldPairs[i+1]
		if value, ok := data[key]; ok {
			rows = append(rows, []string{label, formatValueForMarkdown(value, key)})
		}
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Metric", "Value"})
	table.Bulk(rows)
	table.Render()

	buf.WriteString("\n")
	return buf.String()
}

// formatValueForMarkdown formats a value for markdown display
func formatValueForMarkdown(value any, key string) string {
	switch v := value.(type) {
	case string:
		return v
	case uint64:
		if key == "gc_pause_total_ns" {
			return fmt.Sprintf("%.2f ms", float64(v)/1e6)
		}
		return fmt.Sprintf("%d", v)
	case float64:
		if key == "gc_cpu_fraction" {
			return fmt.Sprintf("%.2f%%", v*100)
		}
		if strings.HasSuffix(key, "_mb") {
			return fmt.Sprintf("%.2f MB", v)
		}
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
