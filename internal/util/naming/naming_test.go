package naming

import "testing"

func TestNamingFunctions(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "Job worker",
			got:      Job("worker"),
			expected: "tf-worker",
		},
		{
			name:     "Job ps",
			got:      Job("ps"),
			expected: "tf-ps",
		},
		{
			name:     "Container",
			got:      Container("ps"),
			expected: "tf-ps",
		},
		{
			name:     "Replica",
			got:      Replica("worker", 3),
			expected: "tf-worker-3",
		},
		{
			name:     "ExternalService",
			got:      ExternalService("worker", 0),
			expected: "tf-worker-0-external",
		},
		{
			name:     "ReplicaFQDN default namespace",
			got:      ReplicaFQDN("worker", 1, "default", "cluster.local"),
			expected: "tf-worker-1.tf-worker.default.svc.cluster.local",
		},
		{
			name:     "ReplicaFQDN custom namespace and domain",
			got:      ReplicaFQDN("ps", 0, "training", "corp.internal"),
			expected: "tf-ps-0.tf-ps.training.svc.corp.internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, want %q", tt.got, tt.expected)
			}
		})
	}
}
