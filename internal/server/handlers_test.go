package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func postJSON(t *testing.T, ts *httptest.Server, path string, body any) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}

	resp, err := http.Post(ts.URL+path, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func validSimulateRequest() map[string]any {
	return map[string]any{
		"task_a":          map[string]any{"name": "prep", "min_hours": 2.0, "max_hours": 4.0},
		"task_b":          map[string]any{"name": "travel", "min_hours": 3.0, "max_hours": 6.0},
		"threshold_hours": 8.0,
		"trials":          1000,
	}
}

func TestHandleSimulate(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := postJSON(t, ts, "/simulate", validSimulateRequest())
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var result SimulateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	if result.ID == "" {
		t.Error("expected a result id")
	}

	if result.TotalTrials != 1000 {
		t.Errorf("expected 1000 trials, got %d", result.TotalTrials)
	}

	if result.Probability < 0 || result.Probability > 1 {
		t.Errorf("probability out of range: %g", result.Probability)
	}

	if result.Band == "" {
		t.Error("expected a band")
	}

	if len(result.Histogram) != 10 {
		t.Errorf("expected 10 histogram bins, got %d", len(result.Histogram))
	}

	if len(result.Durations) != 0 {
		t.Error("durations should be omitted unless requested")
	}
}

func TestHandleSimulate_IncludeDurations(t *testing.T) {
	ts := newTestServer(t, nil)

	body := validSimulateRequest()
	body["include_durations"] = true

	resp := postJSON(t, ts, "/simulate", body)
	defer resp.Body.Close()

	var result SimulateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	if len(result.Durations) != 1000 {
		t.Errorf("expected 1000 durations, got %d", len(result.Durations))
	}
}

func TestHandleSimulate_DefaultTrials(t *testing.T) {
	ts := newTestServer(t, nil)

	body := validSimulateRequest()
	delete(body, "trials")

	resp := postJSON(t, ts, "/simulate", body)
	defer resp.Body.Close()

	var result SimulateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	// config.Default() sets 1000 trials
	if result.TotalTrials != 1000 {
		t.Errorf("expected default of 1000 trials, got %d", result.TotalTrials)
	}
}

func TestHandleSimulate_SeededReproducibility(t *testing.T) {
	ts := newTestServer(t, nil)

	body := validSimulateRequest()
	body["seed"] = 42
	body["include_durations"] = true

	var results [2]SimulateResponse
	for i := range results {
		resp := postJSON(t, ts, "/simulate", body)
		if err := json.NewDecoder(resp.Body).Decode(&results[i]); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		resp.Body.Close()
	}

	if results[0].Probability != results[1].Probability {
		t.Errorf("expected identical probabilities, got %g and %g",
			results[0].Probability, results[1].Probability)
	}

	for i := range results[0].Durations {
		if results[0].Durations[i] != results[1].Durations[i] {
			t.Fatalf("duration %d differs between seeded runs", i)
		}
	}
}

func TestHandleSimulate_InvalidParameters(t *testing.T) {
	ts := newTestServer(t, nil)

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"trials too low", func(b map[string]any) { b["trials"] = 50 }},
		{"trials too high", func(b map[string]any) { b["trials"] = 20000 }},
		{"min exceeds max", func(b map[string]any) {
			b["task_a"] = map[string]any{"name": "prep", "min_hours": 5.0, "max_hours": 2.0}
		}},
		{"negative duration", func(b map[string]any) {
			b["task_b"] = map[string]any{"name": "travel", "min_hours": -1.0, "max_hours": 2.0}
		}},
		{"zero threshold", func(b map[string]any) { b["threshold_hours"] = 0.0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validSimulateRequest()
			tt.mutate(body)

			resp := postJSON(t, ts, "/simulate", body)
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", resp.StatusCode)
			}

			var errResp ErrorResponse
			if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
				t.Fatalf("failed to decode error: %v", err)
			}

			if errResp.Error == "" {
				t.Error("expected an error message")
			}
		})
	}
}

func TestHandleSimulate_MalformedBody(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Post(ts.URL+"/simulate", "application/json", bytes.NewBufferString("{not json"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestScenarioLifecycle(t *testing.T) {
	ts := newTestServer(t, nil)
	client := &http.Client{}

	putScenario := func(name string) *http.Response {
		raw, _ := json.Marshal(validSimulateRequest())
		req, _ := http.NewRequest(http.MethodPut, ts.URL+"/scenarios/"+name, bytes.NewReader(raw))
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		return resp
	}

	// Create
	resp := putScenario("launch")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 on put, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Get
	resp, err := http.Get(ts.URL + "/scenarios/launch")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200 on get, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// List
	resp, err = http.Get(ts.URL + "/scenarios")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var list ScenarioListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	resp.Body.Close()

	if list.Total != 1 || len(list.Scenarios) != 1 {
		t.Fatalf("expected 1 scenario, got %d", list.Total)
	}
	if list.Scenarios[0].Name != "launch" {
		t.Errorf("expected scenario 'launch', got %s", list.Scenarios[0].Name)
	}

	// Run with a seed for reproducibility
	resp = postJSON(t, ts, "/scenarios/launch/run?seed=7", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 on run, got %d", resp.StatusCode)
	}

	var result SimulateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode run result: %v", err)
	}
	resp.Body.Close()

	if result.TotalTrials != 1000 {
		t.Errorf("expected 1000 trials, got %d", result.TotalTrials)
	}

	// Delete
	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/scenarios/launch", nil)
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected status 204 on delete, got %d", resp.StatusCode)
	}

	// Gone
	resp, err = http.Get(ts.URL + "/scenarios/launch")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404 after delete, got %d", resp.StatusCode)
	}
}

func TestScenarioRun_NotFound(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := postJSON(t, ts, "/scenarios/ghost/run", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", resp.StatusCode)
	}
}

func TestScenarioPut_InvalidRequest(t *testing.T) {
	ts := newTestServer(t, nil)

	body := map[string]any{
		"task_a":          map[string]any{"name": "prep", "min_hours": 5.0, "max_hours": 2.0},
		"task_b":          map[string]any{"name": "travel", "min_hours": 3.0, "max_hours": 6.0},
		"threshold_hours": 8.0,
		"trials":          1000,
	}

	raw, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/scenarios/bad", bytes.NewReader(raw))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestHandleScenarioRun_BadSeed(t *testing.T) {
	ts := newTestServer(t, nil)

	// Store a scenario first
	raw, _ := json.Marshal(validSimulateRequest())
	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/scenarios/launch", bytes.NewReader(raw))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	resp = postJSON(t, ts, fmt.Sprintf("/scenarios/%s/run?seed=abc", "launch"), nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400 for non-integer seed, got %d", resp.StatusCode)
	}
}
