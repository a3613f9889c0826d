// Package win32 drives the native Windows API: window classes, windows and
// their message queue through user32, and OpenGL contexts through WGL.
package win32
