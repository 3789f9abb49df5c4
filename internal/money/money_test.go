package money

import "testing"

func TestToCents(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      float64
		want    int64
		wantErr bool
	}{
		{name: "whole dollars", in: 20.00, want: 2000},
		{name: "rounds up", in: 19.99, want: 1999},
		{name: "rounds half up", in: 0.005, want: 1},
		{name: "zero", in: 0, want: 0},
		{name: "negative rejected", in: -1.50, wantErr: true},
		{name: "too large rejected", in: 1e17, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToCents(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ToCents(%v) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestHostShare(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   int64
		want int64
	}{
		{name: "three bookings at 20 dollars", in: 6000, want: 5400},
		{name: "rounds half up", in: 1999, want: 1799},
		{name: "zero", in: 0, want: 0},
		{name: "negative clamps to zero", in: -100, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HostShare(tc.in); got != tc.want {
				t.Fatalf("HostShare(%d) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestCentsToDollarsString(t *testing.T) {
	t.Parallel()

	if got := CentsToDollarsString(5400); got != "54.00" {
		t.Fatalf("got %q", got)
	}
	if got := CentsToDollarsString(-1999); got != "-19.99" {
		t.Fatalf("got %q", got)
	}
}
