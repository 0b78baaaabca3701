package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	cerr "github.com/saeidalz13/battleship-core/internal/error"
	mb "github.com/saeidalz13/battleship-core/models/battleship"
	"github.com/saeidalz13/battleship-core/models/layout"
)

const (
	CommandFleet  string = "fleet"
	CommandLoad   string = "load"
	CommandStatus string = "status"
	CommandMap    string = "map"
	CommandSalvo  string = "salvo"
	CommandShots  string = "shots"
	CommandQuit   string = "quit"
)

const (
	DefaultShotsPerSalvo int = 3

	goodbyeMessage   = "Fair winds!"
	fleetSunkMessage = "All ships sunk, glub glub glub..."
)

var errEndOfInput = errors.New("unexpected end of input")

// CommandProcessor reads whitespace separated commands and drives one
// game at a time through the game manager. It is meant to run on a
// single goroutine.
type CommandProcessor struct {
	gameManager   mb.GameManager
	scanner       *bufio.Scanner
	out           io.Writer
	logger        *slog.Logger
	shotsPerSalvo int
	fleetOpts     []mb.FleetOption
	game          *mb.Game
}

type Option func(*CommandProcessor) error

func NewCommandProcessor(gameManager mb.GameManager, in io.Reader, out io.Writer, optFuncs ...Option) (*CommandProcessor, error) {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	cp := CommandProcessor{
		gameManager:   gameManager,
		scanner:       scanner,
		out:           out,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		shotsPerSalvo: DefaultShotsPerSalvo,
	}
	for _, opt := range optFuncs {
		if err := opt(&cp); err != nil {
			return nil, err
		}
	}
	return &cp, nil
}

func WithLogger(logger *slog.Logger) Option {
	return func(cp *CommandProcessor) error {
		if logger == nil {
			return fmt.Errorf("logger is nil")
		}
		cp.logger = logger
		return nil
	}
}

func WithShotsPerSalvo(shots int) Option {
	return func(cp *CommandProcessor) error {
		if shots <= 0 {
			return fmt.Errorf("shots per salvo must be positive, got: %d", shots)
		}
		cp.shotsPerSalvo = shots
		return nil
	}
}

func WithFleetOptions(opts ...mb.FleetOption) Option {
	return func(cp *CommandProcessor) error {
		cp.fleetOpts = append(cp.fleetOpts, opts...)
		return nil
	}
}

// Game is the game currently being played, nil before the first fleet.
func (cp *CommandProcessor) Game() *mb.Game {
	return cp.game
}

// Run processes commands until quit or the input is exhausted.
func (cp *CommandProcessor) Run() error {
sessionLoop:
	for {
		command, ok := cp.next()
		if !ok {
			break sessionLoop
		}

		var err error
		switch command {
		case CommandFleet:
			err = cp.handleFleet()

		case CommandLoad:
			path, ok := cp.next()
			if !ok {
				err = errEndOfInput
				break
			}
			err = cp.LoadLayout(path)

		case CommandStatus:
			err = cp.handleStatus()

		case CommandMap:
			if cp.game == nil {
				cp.println("no fleet yet")
				continue sessionLoop
			}
			cp.write(cp.game.FleetMap())

		case CommandSalvo:
			err = cp.handleSalvo()

		case CommandShots:
			if cp.game == nil {
				cp.println("no fleet yet")
				continue sessionLoop
			}
			cp.write(cp.game.ShotsMap())

		case CommandQuit:
			break sessionLoop

		default:
			cp.printf("unknown command: %s\n", command)
		}

		if errors.Is(err, errEndOfInput) {
			cp.logger.Warn("input ended in the middle of a command", "command", command)
			break sessionLoop
		}
		if err != nil {
			cp.println(err)
		}
	}

	cp.println(goodbyeMessage)
	return cp.scanner.Err()
}

// LoadLayout builds a fleet from a layout file and starts a new game on it.
func (cp *CommandProcessor) LoadLayout(path string) error {
	l, err := layout.LoadFile(path)
	if err != nil {
		return err
	}

	fleet, err := l.BuildFleet(cp.fleetOpts...)
	if err != nil {
		cp.logger.Warn("layout rejected", "path", path, "error", err)
		return err
	}

	cp.printf("%d ships added\n", len(fleet.Ships()))
	return cp.startGame(fleet)
}

// handleFleet reads ships until the fleet is full. Unknown ships and
// rejected placements are reported and do not count.
func (cp *CommandProcessor) handleFleet() error {
	fleet, err := mb.NewFleet(cp.fleetOpts...)
	if err != nil {
		return err
	}

	for !fleet.IsFull() {
		ship, err := cp.readShip()
		if errors.Is(err, errEndOfInput) {
			return err
		}
		if err != nil {
			cp.printf("unknown ship: %s\n", err)
			continue
		}

		if !fleet.AddShip(ship) {
			cp.logger.Info("ship rejected", "ship", ship.String())
			cp.printf("failed to place %s\n", ship)
		}
	}

	cp.printf("%d ships added\n", len(fleet.Ships()))
	return cp.startGame(fleet)
}

func (cp *CommandProcessor) startGame(fleet *mb.Fleet) error {
	if cp.game != nil {
		cp.gameManager.TerminateGame(cp.game.Uuid())
		cp.logger.Info("game terminated", "game_uuid", cp.game.Uuid())
	}

	game, err := cp.gameManager.CreateGame(fleet)
	if err != nil {
		return err
	}
	cp.game = game
	cp.logger.Info("game created", "game_uuid", game.Uuid(), "ships", len(fleet.Ships()))
	return nil
}

func (cp *CommandProcessor) handleStatus() error {
	if cp.game == nil {
		cp.println("no fleet yet")
		return nil
	}
	fleet := cp.game.Fleet()

	cp.println("all ships:")
	cp.printShips(fleet.Ships())
	cp.println("floating ships:")
	cp.printShips(fleet.FloatingShips())
	for _, kind := range mb.AllShipKinds {
		cp.printf("%s:\n", kind)
		cp.printShips(fleet.ShipsLike(kind))
	}
	return nil
}

func (cp *CommandProcessor) handleSalvo() error {
	if cp.game == nil {
		cp.println("no fleet yet")
		return nil
	}

	for i := 0; i < cp.shotsPerSalvo; i++ {
		pos, err := cp.readPosition()
		if err != nil {
			return err
		}

		if sunk := cp.game.Fire(pos); sunk != nil {
			cp.printf("%s sunk at %s\n", sunk.Kind(), sunk.Anchor())
		}
	}

	g := cp.game
	cp.printf("Hits: %d Inv: %d Rep: %d Remaining: %d ships.\n", g.Hits(), g.InvalidShots(), g.RepeatedShots(), g.RemainingShips())
	cp.logger.Debug("salvo fired", "game_uuid", g.Uuid(), "hits", g.Hits(), "sunk", g.SunkShips())

	if g.IsOver() {
		cp.println(fleetSunkMessage)
	}
	return nil
}

func (cp *CommandProcessor) next() (string, bool) {
	if !cp.scanner.Scan() {
		return "", false
	}
	return cp.scanner.Text(), true
}

func (cp *CommandProcessor) readInt() (int, error) {
	token, ok := cp.next()
	if !ok {
		return 0, errEndOfInput
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got: %s", token)
	}
	return n, nil
}

func (cp *CommandProcessor) readPosition() (*mb.Position, error) {
	row, err := cp.readInt()
	if err != nil {
		return nil, err
	}
	column, err := cp.readInt()
	if err != nil {
		return nil, err
	}
	return mb.NewPosition(row, column), nil
}

// readShip consumes "kind row column bearing".
func (cp *CommandProcessor) readShip() (*mb.Ship, error) {
	kind, ok := cp.next()
	if !ok {
		return nil, errEndOfInput
	}
	pos, err := cp.readPosition()
	if err != nil {
		return nil, err
	}
	bearing, ok := cp.next()
	if !ok {
		return nil, errEndOfInput
	}

	ship, err := mb.BuildShip(kind, mb.ParseCompass(bearing), pos)
	if err != nil {
		if cerr.IsShipErr(err, cerr.ShipErrInvalidOrientation) {
			cp.logger.Info("invalid bearing", "kind", kind, "bearing", bearing)
		}
		return nil, err
	}
	return ship, nil
}

func (cp *CommandProcessor) printShips(ships []*mb.Ship) {
	for _, s := range ships {
		cp.println(s)
	}
}

func (cp *CommandProcessor) write(s string) {
	_, _ = io.WriteString(cp.out, s)
}

func (cp *CommandProcessor) println(a ...any) {
	_, _ = fmt.Fprintln(cp.out, a...)
}

func (cp *CommandProcessor) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(cp.out, format, a...)
}
