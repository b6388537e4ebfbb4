package res

// AboutContent contains the Markdown content for the About dialog.
// This is maintained separately for easy updates.
const AboutContent = `A scrollable radio frequency dial built with Go and Fyne.

**Tuning:**
- Drag or flick the ruler; it settles on the nearest step
- Scroll with the mouse wheel or trackpad
- Arrow buttons, arrow keys or Alt+Left / Alt+Right step once
- Double-click the readout to jump to the start of the band

**Themes:** load a TOML file from File > Load Theme.
Run ` + "`radiodial theme default`" + ` to print every key.
`
