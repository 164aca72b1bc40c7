// Package menunav adds keyboard and gamepad navigation to 2D sprite-button
// menus built with [Ebitengine].
//
// Menus are made of panels; each panel owns a set of focusable elements.
// Activating a panel arranges its elements into rows and columns by
// position, and the [Navigator] then moves focus across that grid with
// Up/Down/Left/Right, hands focus off to neighbouring panels, and presses
// the focused element on Enter.
//
// # Quick start
//
//	play := menunav.NewButton("play", 320, 300, 160, 40)
//	opts := menunav.NewButton("options", 320, 240, 160, 40)
//	quit := menunav.NewButton("quit", 320, 180, 160, 40)
//	main := menunav.NewElementPanel("main", play, opts, quit)
//
//	settings := menunav.DefaultSettings()
//	evidence := menunav.NewEvidenceFrom(settings)
//	nav := menunav.NewNavigator(settings,
//		menunav.WithPresenter(menunav.NewElementPresenter(evidence)))
//	nav.Activate(main, menunav.WithFocus("play"))
//
//	input := menunav.NewKeyInput(nav.Settings())
//
//	// in Game.Update
//	input.Update(nav)
//	evidence.Update(1.0 / 60)
//
//	// in Game.Draw
//	evidence.Draw(screen)
//
// # Coordinates
//
// Positions and bounds are Y-up: larger Y is higher on screen, so the first
// row of a group is the one with the largest Y. [ScreenRect] converts bounds
// to Y-down screen rectangles for drawing.
//
// # Panels and groups
//
// A [Panel] is any comparable value that can list its current elements.
// [Navigator.Activate] replaces every active group with the panel's group;
// [Navigator.AddGroup] keeps the existing ones so focus can move between
// several panels. Elements that are disabled or whose ID equals
// [Settings.IgnoreID] are left out.
//
// # Capabilities
//
// Elements opt into extra behaviour by implementing small interfaces:
// [HorizontalSlider] makes Left/Right adjust a value instead of moving
// focus, while [Rollable] and [Pressable] receive highlight and press calls
// from [ElementPresenter]. [Button], [ToggleButton] and [Slider] implement
// them.
//
// # Events
//
// Navigation and button events go through an [Events] dispatcher. An
// [EventSink] receives every navigation event; the menunav/ecs package
// provides one that publishes into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package menunav
