package logo

// Art is the logo rasterized to 60x29 cells. Any non-space cell is occupied.
var Art = []string{
	"                                                        #   ",
	"                                                     ###    ",
	"                                                   ###      ",
	"                                                 ####       ",
	"                                               #####        ",
	"                                             ######         ",
	"                                           #######          ",
	"                                         #########          ",
	"                                      ############          ",
	"  #                                 #############           ",
	"   ##                             ###############           ",
	"     ###                        ##################          ",
	"      #####                  #####################          ",
	"       #########       ############################         ",
	"        ############################################        ",
	"         ###########################        #########       ",
	"          #####################                  #####      ",
	"          ##################                        ####    ",
	"           ###############                             ##   ",
	"           #############                                 #  ",
	"          ############                                      ",
	"          #########                                         ",
	"         ########                                           ",
	"         ######                                             ",
	"        #####                                               ",
	"       ####                                                 ",
	"     ####                                                   ",
	"    ##                                                      ",
	"  ##                                                        ",
}
