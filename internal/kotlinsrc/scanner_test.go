package kotlinsrc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const contextsKt = `package android_kt

import android.content.Context
import android.os.Build
import androidx.annotation.RequiresApi

// fun Context.commentedOut() = nothing
fun Context.powerManager() = getSystemService(Context.POWER_SERVICE) as PowerManager

fun Context.notificationManager() =
  getSystemService(Context.NOTIFICATION_SERVICE) as NotificationManager

/**
 * fun Context.inDoc() is not a declaration
 */
@RequiresApi(Build.VERSION_CODES.N)
fun Context.hardwarePropertiesManager() =
  getSystemService(Context.HARDWARE_PROPERTIES_SERVICE) as HardwarePropertiesManager

fun Activity.windowInsets() = window.decorView.rootWindowInsets

fun topLevel(x: Int) = "fun Context.inString()"

fun <T> Context.generic(): T? = null

val template = """
fun Context.inRawString() =
  getSystemService(Context.X) as X
"""

fun Context.openAppSettings(
  packageName: String = this.packageName, applyBlock: Intent.() -> Unit = {}
) {
  val c = 'c'
  val n = 0x1F
}
`

func TestScan(t *testing.T) {
	decls, err := Scan("Contexts.kt", []byte(contextsKt))
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	got := make([]string, 0, len(decls))
	for _, d := range decls {
		got = append(got, d.Receiver+"."+d.Name)
	}
	want := []string{
		"Context.powerManager",
		"Context.notificationManager",
		"Context.hardwarePropertiesManager",
		"Activity.windowInsets",
		"Context.openAppSettings",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("declarations mismatch (-want +got):\n%s", diff)
	}

	if decls[0].Pos.Line != 8 {
		t.Fatalf("powerManager line = %d, want 8", decls[0].Pos.Line)
	}
	if last := decls[len(decls)-1]; last.Pos.Line != 31 {
		t.Fatalf("openAppSettings line = %d, want 31", last.Pos.Line)
	}
	if decls[0].Pos.Filename != "Contexts.kt" {
		t.Fatalf("filename = %q", decls[0].Pos.Filename)
	}
}

func TestScanRawString(t *testing.T) {
	src := "val s = \"\"\"\nfun Context.inRaw()\n\"\"\"\nfun Context.real() = 3\n"

	decls, err := Scan("Raw.kt", []byte(src))
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(decls) != 1 || decls[0].Name != "real" {
		t.Fatalf("decls = %+v, want only real", decls)
	}
	if decls[0].Pos.Line != 4 {
		t.Fatalf("real line = %d, want 4", decls[0].Pos.Line)
	}
}

func TestScanEmpty(t *testing.T) {
	decls, err := Scan("empty.kt", nil)
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(decls) != 0 {
		t.Fatalf("decls = %v, want none", decls)
	}
}

func TestIndexFor(t *testing.T) {
	decls, err := Scan("Contexts.kt", []byte(contextsKt))
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	idx := IndexFor(decls, "Context")
	if !idx.Has("powerManager") || !idx.Has("openAppSettings") {
		t.Fatalf("index missing declarations: %v", idx)
	}
	if idx.Has("windowInsets") {
		t.Fatal("index includes a declaration for another receiver")
	}
	if idx.Has("inDoc") || idx.Has("inString") || idx.Has("inRawString") || idx.Has("commentedOut") {
		t.Fatal("index includes text from comments or strings")
	}
	if len(IndexFor(decls, "Fragment")) != 0 {
		t.Fatal("expected empty index for unknown receiver")
	}
}
