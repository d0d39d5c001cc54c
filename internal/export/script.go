// internal/export/script.go
package export

import (
	"fmt"
	"strings"

	"github.com/soundscrape/soundscrape/pkg/types"
)

// ScriptGenerator produces a Windows cmd batch script that drives yt-dlp
// over the exported items: a self-contained menu covering yt-dlp status
// checks, three installation paths, the downloads themselves, and a track
// listing. The script is a value returned to the caller; nothing is
// written or executed here.
type ScriptGenerator struct{}

// NewScriptGenerator creates a batch script generator.
func NewScriptGenerator() *ScriptGenerator {
	return &ScriptGenerator{}
}

// Generate renders the batch script for the given items.
func (g *ScriptGenerator) Generate(items []types.ExportItem) ([]byte, error) {
	var lines []string

	lines = append(lines,
		"@echo off",
		"setlocal enabledelayedexpansion",
		"title SoundCloud Batch Downloader",
		"",
		"REM ========================================",
		"REM SoundCloud Batch Download Script",
		"REM Auto-handles yt-dlp installation and downloads",
		"REM ========================================",
		"",
		":main_menu",
		"cls",
		"echo.",
		"echo ========================================",
		"echo   SoundCloud Batch Downloader",
		"echo ========================================",
		fmt.Sprintf("echo Total tracks selected: %d", len(items)),
		"echo.",
		"echo Choose an option:",
		"echo 1) Check yt-dlp status",
		"echo 2) Install yt-dlp (via pip)",
		"echo 3) Install yt-dlp (via winget)",
		"echo 4) Install yt-dlp (download executable)",
		"echo 5) Download all selected tracks",
		"echo 6) Show track list",
		"echo 7) Exit",
		"echo.",
		"set /p choice=Enter your choice [1-7]: ",
		"",
	)
	lines = append(lines, menuDispatch()...)
	lines = append(lines, installSections()...)
	lines = append(lines, g.downloadSection(items)...)
	lines = append(lines, g.trackListSection(items)...)
	lines = append(lines,
		":exit",
		"echo.",
		"echo Thank you for using SoundCloud Batch Downloader!",
		"echo.",
		"pause",
		"exit /b 0",
	)

	return []byte(strings.Join(lines, "\n")), nil
}

func menuDispatch() []string {
	return []string{
		`if "%choice%"=="1" goto check_ytdlp`,
		`if "%choice%"=="2" goto install_pip`,
		`if "%choice%"=="3" goto install_winget`,
		`if "%choice%"=="4" goto install_exe`,
		`if "%choice%"=="5" goto download_tracks`,
		`if "%choice%"=="6" goto show_tracks`,
		`if "%choice%"=="7" goto exit`,
		"echo Invalid choice. Please select 1-7.",
		"pause",
		"goto main_menu",
		"",
	}
}

func installSections() []string {
	return []string{
		":check_ytdlp",
		"cls",
		"echo Checking yt-dlp installation...",
		"echo.",
		"yt-dlp --version >nul 2>&1",
		"if errorlevel 1 (",
		"    echo yt-dlp is NOT installed or not in PATH",
		"    echo.",
		"    echo Please install yt-dlp using one of the installation options.",
		") else (",
		"    echo yt-dlp is installed and working!",
		"    echo Version:",
		"    yt-dlp --version",
		")",
		"echo.",
		"pause",
		"goto main_menu",
		"",
		":install_pip",
		"cls",
		"echo Installing yt-dlp via pip...",
		"echo.",
		"python --version >nul 2>&1",
		"if errorlevel 1 (",
		"    echo Python is not installed or not in PATH",
		"    echo Please install Python from https://python.org first",
		"    pause",
		"    goto main_menu",
		")",
		"echo Python found. Installing yt-dlp...",
		"pip install --upgrade yt-dlp",
		"if errorlevel 1 (",
		"    echo Installation failed",
		") else (",
		"    echo yt-dlp installed successfully via pip!",
		")",
		"pause",
		"goto main_menu",
		"",
		":install_winget",
		"cls",
		"echo Installing yt-dlp via winget...",
		"echo.",
		"winget --version >nul 2>&1",
		"if errorlevel 1 (",
		"    echo winget is not available",
		"    echo Please use Windows 10/11 with App Installer from Microsoft Store",
		"    pause",
		"    goto main_menu",
		")",
		"echo winget found. Installing yt-dlp...",
		"winget install yt-dlp",
		"if errorlevel 1 (",
		"    echo Installation failed",
		") else (",
		"    echo yt-dlp installed successfully via winget!",
		")",
		"pause",
		"goto main_menu",
		"",
		":install_exe",
		"cls",
		"echo Installing yt-dlp executable...",
		"echo.",
		"echo This will download yt-dlp.exe to the current directory.",
		"echo You can then move it to a folder in your PATH if desired.",
		"echo.",
		"set /p confirm=Continue? (y/n): ",
		`if /i not "%confirm%"=="y" goto main_menu`,
		"echo.",
		"echo Downloading yt-dlp.exe...",
		"curl -L https://github.com/yt-dlp/yt-dlp/releases/latest/download/yt-dlp.exe -o yt-dlp.exe",
		"if errorlevel 1 (",
		"    echo Download failed. Please check your internet connection.",
		") else (",
		"    echo yt-dlp.exe downloaded successfully!",
		"    echo The executable is now available in the current directory.",
		")",
		"pause",
		"goto main_menu",
		"",
	}
}

func (g *ScriptGenerator) downloadSection(items []types.ExportItem) []string {
	lines := []string{
		":download_tracks",
		"cls",
		"echo Checking yt-dlp availability...",
		"yt-dlp --version >nul 2>&1",
		"if errorlevel 1 (",
		"    REM Try local executable",
		"    .\\yt-dlp.exe --version >nul 2>&1",
		"    if errorlevel 1 (",
		"        echo yt-dlp not found!",
		"        echo Please install yt-dlp first using options 2-4.",
		"        pause",
		"        goto main_menu",
		"    ) else (",
		"        set YTDLP_CMD=.\\yt-dlp.exe",
		"    )",
		") else (",
		"    set YTDLP_CMD=yt-dlp",
		")",
		"",
		"echo yt-dlp found! Starting download...",
		"echo.",
		fmt.Sprintf("echo Total tracks to download: %d", len(items)),
		"echo.",
		"echo Download options:",
		"echo - Format: MP3 (highest quality)",
		"echo - Output: Current directory",
		"echo.",
		"set /p start_download=Start downloading? (y/n): ",
		`if /i not "%start_download%"=="y" goto main_menu`,
		"echo.",
		"",
	}

	for i, item := range items {
		name := EscapeCmd(item.Name)
		lines = append(lines,
			fmt.Sprintf("echo [%d/%d] Downloading: %s", i+1, len(items), name),
			fmt.Sprintf("echo Author: %s", EscapeCmd(item.Author)),
			fmt.Sprintf(`%%YTDLP_CMD%% "%s" --extract-audio --audio-format mp3 --audio-quality 0 --no-playlist`, item.URL),
			"if errorlevel 1 (",
			fmt.Sprintf("    echo Failed to download: %s", name),
			") else (",
			fmt.Sprintf("    echo Downloaded: %s", name),
			")",
			"echo.",
		)
	}

	lines = append(lines,
		"",
		"echo.",
		"echo ========================================",
		"echo Download process completed!",
		"echo ========================================",
		"pause",
		"goto main_menu",
		"",
	)
	return lines
}

func (g *ScriptGenerator) trackListSection(items []types.ExportItem) []string {
	lines := []string{
		":show_tracks",
		"cls",
		"echo Selected tracks for download:",
		"echo ========================================",
	}
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("echo %d. %s by %s",
			i+1, EscapeCmd(item.Name), EscapeCmd(item.Author)))
	}
	lines = append(lines,
		"echo ========================================",
		fmt.Sprintf("echo Total: %d tracks", len(items)),
		"echo.",
		"pause",
		"goto main_menu",
		"",
	)
	return lines
}

// cmdEscaper caret-escapes cmd metacharacters and doubles quotes so
// display names survive echo and quoting inside the batch script.
var cmdEscaper = strings.NewReplacer(
	"&", "^&",
	"<", "^<",
	">", "^>",
	"|", "^|",
	`"`, `""`,
)

// EscapeCmd escapes a display string for use inside the batch script.
func EscapeCmd(s string) string {
	return cmdEscaper.Replace(s)
}
